package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/api/route"
	"github.com/ninelens/reviewrec/bootstrap"
	"github.com/ninelens/reviewrec/mongo"
)

func main() {
	app := bootstrap.App()

	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()

	route.Setup(env, timeout, db, engine)

	engine.Run(env.ServerAddress)
}
