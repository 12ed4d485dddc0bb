package bootstrap

import (
	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/util/logger"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App(envPath string) (*Application, error) {
	env, err := NewEnv(envPath)
	if err != nil {
		return nil, err
	}

	logger.InitLogger(env.AppEnv, env.LogLevel)
	controller.SetExposeErrors(env.IsDevelopment())

	client, err := NewMongoDatabase(env)
	if err != nil {
		return nil, err
	}

	return &Application{Env: env, Mongo: client}, nil
}

func (app *Application) Database() mongo.Database {
	return app.Mongo.Database(app.Env.DBName)
}

// Transactor returns the unit-of-work runner used by the attach and detach
// operations. It only opens transactions when DB_TRANSACTIONS is set.
func (app *Application) Transactor() *mongo.TransactionRunner {
	return mongo.NewTransactionRunner(app.Mongo, app.Env.DBTransactions)
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
