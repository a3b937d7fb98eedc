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
)

const collectionPages = "pages"

type PageRepository struct {
	coll *mongo.Collection
}

func NewPageRepository(db *mongo.Database) *PageRepository {
	return &PageRepository{coll: db.Collection(collectionPages)}
}

type pageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PageKey   string             `bson:"page_key"`
	TitleZH   string             `bson:"title_zh"`
	TitleEN   string             `bson:"title_en"`
	ContentZH string             `bson:"content_zh"`
	ContentEN string             `bson:"content_en"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *pageDoc) toDomain() *domain.Page {
	return &domain.Page{
		ID:        d.ID.Hex(),
		PageKey:   d.PageKey,
		TitleZH:   d.TitleZH,
		TitleEN:   d.TitleEN,
		ContentZH: d.ContentZH,
		ContentEN: d.ContentEN,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *PageRepository) FindByKey(ctx context.Context, pageKey string) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc pageDoc
	if err := r.coll.FindOne(ctx, bson.M{"page_key": pageKey}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPageNotFound
		}
		return nil, fmt.Errorf("find page: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PageRepository) List(ctx context.Context) ([]domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "page_key", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer cursor.Close(ctx)

	var pages []domain.Page
	for cursor.Next(ctx) {
		var doc pageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		pages = append(pages, *doc.toDomain())
	}
	return pages, cursor.Err()
}

// Upsert replaces the page content for page.PageKey, inserting the document
// when the key has never been edited before.
func (r *PageRepository) Upsert(ctx context.Context, page *domain.Page) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title_zh":   page.TitleZH,
		"title_en":   page.TitleEN,
		"content_zh": page.ContentZH,
		"content_en": page.ContentEN,
		"updated_at": page.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc pageDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"page_key": page.PageKey}, update, opts).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("upsert page: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique page_key index.
func (r *PageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "page_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
