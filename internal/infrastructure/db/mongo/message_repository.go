package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

const collectionMessages = "messages"

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(collectionMessages)}
}

type messageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Reference string             `bson:"reference"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Content   string             `bson:"content"`
	Status    string             `bson:"status"`
	Reply     string             `bson:"reply,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	RepliedAt *time.Time         `bson:"replied_at,omitempty"`
}

func (d *messageDoc) toDomain() *domain.Message {
	return &domain.Message{
		ID:        d.ID.Hex(),
		Reference: d.Reference,
		Name:      d.Name,
		Email:     d.Email,
		Content:   d.Content,
		Status:    domain.MessageStatus(d.Status),
		Reply:     d.Reply,
		CreatedAt: d.CreatedAt,
		RepliedAt: d.RepliedAt,
	}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := messageDoc{
		Reference: message.Reference,
		Name:      message.Name,
		Email:     message.Email,
		Content:   message.Content,
		Status:    string(message.Status),
		CreatedAt: message.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc messageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MessageRepository) List(ctx context.Context, filter ports.MessageFilter) ([]domain.Message, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetSkip(int64((filter.Page - 1) * filter.Limit)).SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []domain.Message
	for cursor.Next(ctx) {
		var doc messageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, *doc.toDomain())
	}
	return messages, total, cursor.Err()
}

func (r *MessageRepository) Update(ctx context.Context, message *domain.Message) error {
	oid, err := primitive.ObjectIDFromHex(message.ID)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(message.Status),
		"reply":      message.Reply,
		"replied_at": message.RepliedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// EnsureIndexes creates the status and created_at indexes used by List.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "reference", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
