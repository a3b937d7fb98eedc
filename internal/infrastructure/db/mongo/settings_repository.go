package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

const collectionSettings = "settings"

// settingsDocID pins the single settings document to a well-known _id.
const settingsDocID = "site"

type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(collectionSettings)}
}

type settingsDoc struct {
	ID                string    `bson:"_id"`
	SiteNameZH        string    `bson:"site_name_zh"`
	SiteNameEN        string    `bson:"site_name_en"`
	SiteDescriptionZH string    `bson:"site_description_zh"`
	SiteDescriptionEN string    `bson:"site_description_en"`
	ContactEmail      string    `bson:"contact_email"`
	ICPNumber         string    `bson:"icp_number"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

func (d *settingsDoc) toDomain() *domain.Settings {
	return &domain.Settings{
		SiteNameZH:        d.SiteNameZH,
		SiteNameEN:        d.SiteNameEN,
		SiteDescriptionZH: d.SiteDescriptionZH,
		SiteDescriptionEN: d.SiteDescriptionEN,
		ContactEmail:      d.ContactEmail,
		ICPNumber:         d.ICPNumber,
		UpdatedAt:         d.UpdatedAt,
	}
}

// Get returns the settings document, or zero-valued settings when the site
// has never been configured.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.Settings{}, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := settingsDoc{
		ID:                settingsDocID,
		SiteNameZH:        settings.SiteNameZH,
		SiteNameEN:        settings.SiteNameEN,
		SiteDescriptionZH: settings.SiteDescriptionZH,
		SiteDescriptionEN: settings.SiteDescriptionEN,
		ContactEmail:      settings.ContactEmail,
		ICPNumber:         settings.ICPNumber,
		UpdatedAt:         settings.UpdatedAt,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return doc.toDomain(), nil
}
