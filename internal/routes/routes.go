package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Aaron23010705/vehicle-service-api/internal/audit"
	"github.com/Aaron23010705/vehicle-service-api/internal/handlers"
	infraRepo "github.com/Aaron23010705/vehicle-service-api/internal/infra/repository"
	ucClient "github.com/Aaron23010705/vehicle-service-api/internal/usecase/client"
	ucReservation "github.com/Aaron23010705/vehicle-service-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientMongoRepository(db)
	reservationRepo := infraRepo.NewReservationMongoRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — CLIENTS
	// ======================================================
	listClientsUC := ucClient.NewListClients(clientRepo)
	getClientUC := ucClient.NewGetClient(clientRepo)
	createClientUC := ucClient.NewCreateClient(clientRepo, auditDispatcher)
	updateClientUC := ucClient.NewUpdateClient(clientRepo, auditDispatcher)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, auditDispatcher)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	listReservationsUC := ucReservation.NewListReservations(reservationRepo)
	getReservationUC := ucReservation.NewGetReservation(reservationRepo)
	createReservationUC := ucReservation.NewCreateReservation(reservationRepo, auditDispatcher)
	updateReservationUC := ucReservation.NewUpdateReservation(reservationRepo, auditDispatcher)
	deleteReservationUC := ucReservation.NewDeleteReservation(reservationRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		listClientsUC,
		getClientUC,
		createClientUC,
		updateClientUC,
		deleteClientUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		listReservationsUC,
		getReservationUC,
		createReservationUC,
		updateReservationUC,
		deleteReservationUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.GET("/:id", clientHandler.Get)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
		}

		// Singular path kept for compatibility with existing consumers.
		reservation := api.Group("/reservation")
		{
			reservation.GET("", reservationHandler.List)
			reservation.POST("", reservationHandler.Create)
			reservation.GET("/:id", reservationHandler.Get)
			reservation.PUT("/:id", reservationHandler.Update)
			reservation.DELETE("/:id", reservationHandler.Delete)
		}

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
