package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore maps each collection onto a MongoDB collection of the same name.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to uri and verifies the connection.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	if uri == "" || database == "" {
		return nil, errors.New("mongo store requires DATABASE_URL and DATABASE_NAME")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

func (m *MongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	fields, err := toBSON(doc)
	if err != nil {
		return "", err
	}
	delete(fields, IDField)
	now := time.Now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now

	res, err := m.db.Collection(collection).InsertOne(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (m *MongoStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	q, err := mongoFilter(filter)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	err = m.db.Collection(collection).FindOne(ctx, q).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return fromBSON(raw), nil
}

func (m *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	q, err := mongoFilter(filter)
	if err != nil {
		return nil, err
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := m.db.Collection(collection).Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	docs := make([]Document, 0, len(raws))
	for _, r := range raws {
		docs = append(docs, fromBSON(r))
	}
	return docs, nil
}

func (m *MongoStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		if k == IDField {
			continue
		}
		set[k] = v
	}
	res, err := m.db.Collection(collection).UpdateOne(ctx, bson.M{IDField: oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Name returns the database name.
func (m *MongoStore) Name() string {
	return m.db.Name()
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mongoFilter converts a string "_id" into an ObjectID.
func mongoFilter(f Filter) (bson.M, error) {
	q := bson.M{}
	for k, v := range f {
		if s, ok := v.(string); ok && k == IDField {
			oid, err := primitive.ObjectIDFromHex(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidID, s)
			}
			q[k] = oid
			continue
		}
		q[k] = v
	}
	return q, nil
}

func toBSON(doc any) (bson.M, error) {
	if m, ok := doc.(map[string]any); ok {
		out := bson.M{}
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return fields, nil
}

// fromBSON exposes the ObjectID as a hex string and times as time.Time.
func fromBSON(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		switch tv := v.(type) {
		case primitive.ObjectID:
			doc[k] = tv.Hex()
		case primitive.DateTime:
			doc[k] = tv.Time().UTC()
		case bson.A:
			doc[k] = []any(tv)
		default:
			doc[k] = v
		}
	}
	return doc
}
