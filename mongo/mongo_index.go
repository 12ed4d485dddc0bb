package mongo

import (
	"context"
	"time"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Artist Collection
	artistCollection := db.Collection(domain.CollectionArtist)
	createUniqueIndex(ctx, artistCollection, bson.D{{Key: "name", Value: 1}}, "name_unique")
	// CV titles are unique for exhibitions and talks; the partial filter keeps
	// artists with empty subsections from colliding on a missing key.
	createPartialUniqueIndex(ctx, artistCollection, bson.D{{Key: "exhibitions.title", Value: 1}},
		bson.M{"exhibitions.title": bson.M{"$exists": true}}, "exhibitions_title_unique")
	createPartialUniqueIndex(ctx, artistCollection, bson.D{{Key: "talks.title", Value: 1}},
		bson.M{"talks.title": bson.M{"$exists": true}}, "talks_title_unique")

	// Artwork Collection
	artworkCollection := db.Collection(domain.CollectionArtwork)
	createUniqueIndex(ctx, artworkCollection, bson.D{{Key: "title", Value: 1}}, "title_unique")
	createIndex(ctx, artworkCollection, bson.D{{Key: "artwork_type", Value: 1}}, "artwork_type")
	createIndex(ctx, artworkCollection, bson.D{{Key: "maker", Value: 1}}, "maker")

	// Artwork Image Collection
	imageCollection := db.Collection(domain.CollectionArtworkImage)
	createUniqueIndex(ctx, imageCollection, bson.D{{Key: "url", Value: 1}}, "url_unique")
	createIndex(ctx, imageCollection, bson.D{{Key: "image_of", Value: 1}}, "image_of")

	// Installation Collection
	installationCollection := db.Collection(domain.CollectionInstallation)
	createUniqueIndex(ctx, installationCollection, bson.D{{Key: "install_desc", Value: 1}}, "install_desc_unique")

	// Installation Media Collection
	mediaCollection := db.Collection(domain.CollectionInstallationMedia)
	createUniqueIndex(ctx, mediaCollection, bson.D{{Key: "url", Value: 1}}, "url_unique")
	createIndex(ctx, mediaCollection, bson.D{{Key: "media_of", Value: 1}}, "media_of")

	// Administrator Collection
	adminCollection := db.Collection(domain.CollectionAdministrator)
	createUniqueIndex(ctx, adminCollection, bson.D{{Key: "username", Value: 1}}, "username_unique")
	createUniqueIndex(ctx, adminCollection, bson.D{{Key: "email", Value: 1}}, "email_unique")
}

func createIndex(ctx context.Context, collection Collection, keys bson.D, name string) {
	createIndexWithOptions(ctx, collection, keys, options.Index().SetName(name))
}

func createUniqueIndex(ctx context.Context, collection Collection, keys bson.D, name string) {
	createIndexWithOptions(ctx, collection, keys, options.Index().SetName(name).SetUnique(true))
}

func createPartialUniqueIndex(ctx context.Context, collection Collection, keys bson.D, partial bson.M, name string) {
	opts := options.Index().
		SetName(name).
		SetUnique(true).
		SetPartialFilterExpression(partial)
	createIndexWithOptions(ctx, collection, keys, opts)
}

func createIndexWithOptions(ctx context.Context, collection Collection, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name := ""
	if opts.Name != nil {
		name = *opts.Name
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Warn().Err(err).Str("index", name).Msg("index creation failed")
	} else {
		log.Debug().Str("index", name).Msg("index ready")
	}
}
