package bootstrap

import (
	"context"
	"time"

	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/rs/zerolog/log"
)

func NewMongoDatabase(env *Env) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.MongoDBURL)
	if err != nil {
		return nil, err
	}

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Info().Str("database", env.DBName).Msg("connected to MongoDB")
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("failed to close MongoDB connection")
		return
	}
	log.Info().Msg("connection to MongoDB closed")
}
