package routes

import (
	"log"
	"os"
	"strconv"

	_ "talentbruecke/docs" // This will be auto-generated
	"talentbruecke/internal/adapter/http/handlers"
	repository2 "talentbruecke/internal/adapter/persistence/repository"
	"talentbruecke/internal/infrastructure/database"
	"talentbruecke/internal/infrastructure/payments"
	"talentbruecke/internal/infrastructure/storage"
	"talentbruecke/internal/usecase"
	"talentbruecke/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	candidateRepo := repository2.NewCandidateDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	relationRepo := repository2.NewRelationDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	interviewRepo := repository2.NewInterviewDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	documentStore, err := storage.NewFilesystemStore(os.Getenv("DOCUMENT_STORE_DIR"))
	if err != nil {
		log.Fatalf("Failed to initialize the document store: %v", err)
	}

	verificationUseCase := usecase.NewVerificationUseCase(candidateRepo, documentRepo)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, documentStore)
	pipelineUseCase := usecase.NewPipelineUseCase(relationRepo, quoteRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, relationRepo, paymentGateway)
	interviewUseCase := usecase.NewInterviewUseCase(interviewRepo, relationRepo, candidateRepo)

	verificationHandler := handlers.NewVerificationHandler(verificationUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	pipelineHandler := handlers.NewPipelineHandler(pipelineUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	interviewHandler := handlers.NewInterviewHandler(interviewUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLifecycleRoutes(v1, verificationHandler, documentHandler, pipelineHandler, quoteHandler, interviewHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
