package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/file_store"
	"github.com/socialraccoon/api/server"
	"github.com/socialraccoon/api/server/middlewares"
	"github.com/socialraccoon/api/services"
	"github.com/socialraccoon/api/utils"
	"github.com/socialraccoon/api/utils/dotenv"
	Flag "github.com/socialraccoon/api/utils/flag"
	Logger "github.com/socialraccoon/api/utils/log"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func init() {
	middlewares.Setup()

	Logger.Log.Info("api server initialized")
}

func cleanup() {
	utils.CloseProfiler()
	utils.CloseTracer()
	Logger.Log.Info("api server shutdown")
}

// newImageStore picks S3 in prod, local disk otherwise.
func newImageStore() (file_store.ProfileImageStore, error) {
	if os.Getenv("RACCOON_ENV") == dotenv.ProdEnv {
		return file_store.NewS3FileStore(
			os.Getenv("S3_REGION"),
			os.Getenv("S3_IMAGE_BUCKET"),
			os.Getenv("IMAGE_URL_PREFIX"),
		)
	}
	return file_store.NewLocalFileStore("profile-images")
}

func main() {
	defer cleanup()

	Flag.ParseFlags()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	Logger.InitLogger()

	utils.InitTracer()
	utils.InitProfiler()

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	store, err := newImageStore()
	if err != nil {
		Logger.Log.Fatal("fail to initialize image store: ", err)
	}
	defer store.CleanUp()

	// Services are wired explicitly, owners after their collaborators, so
	// the dependency graph stays acyclic.
	reactions := services.NewReactionService(db)
	images := services.NewImageProfileService(db)
	apiServer := &server.APIServer{
		Users:     services.NewUserService(db, reactions, images, store),
		Profiles:  services.NewProfileService(db),
		Posts:     services.NewPostService(db),
		Comments:  services.NewCommentService(db),
		Reactions: reactions,
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(gintrace.Middleware(Flag.ServiceName))
	router.Use(middlewares.RequestLogger())

	apiServer.RegisterRoutes(router)

	Logger.Log.Info("api server starts up")
	router.Run(":8080")
}
