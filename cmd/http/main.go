package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/services/core/admin"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/booking"
	"medibook-service/internal/app/services/core/contacts"
	"medibook-service/internal/app/services/core/directory"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/app/services/core/session"
	"medibook-service/internal/app/services/hospital"
	sharedredis "medibook-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	worker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	workerCtx, stopWorker := context.WithCancel(context.Background())
	worker.Start(workerCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	stopWorker()
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) *directory.Worker {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionTTL := time.Duration(bootstrap.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	sessionService := session.NewSessionService(redisRepository, sessionTTL)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Hospital API clients
	requestTimeout := time.Duration(bootstrap.InternalConfig.Hospital.RequestTimeoutInSeconds) * time.Second
	hospitalAPI := hospital.NewClient(bootstrap.InternalConfig.Hospital.BaseUrl, requestTimeout)
	authClient := hospital.NewAuthClient(hospitalAPI)
	doctorClient := hospital.NewDoctorClient(hospitalAPI)
	patientClient := hospital.NewPatientClient(hospitalAPI)
	appointmentClient := hospital.NewAppointmentClient(hospitalAPI)
	slotClient := hospital.NewSlotClient(hospitalAPI)
	availabilityClient := hospital.NewAvailabilityClient(hospitalAPI)
	contactClient := hospital.NewContactClient(hospitalAPI)
	statsClient := hospital.NewStatsClient(hospitalAPI)

	// Directory
	directoryUsecase := directory.NewDirectoryUsecase(doctorClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	directoryController := directory.NewDirectoryController(directoryUsecase, bootstrap.Logger)
	directoryWorker := directory.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, directoryUsecase)

	// Booking
	bookingUsecase := booking.NewBookingUsecase(slotClient, appointmentClient, directoryUsecase, bootstrap.Logger)
	bookingController := booking.NewBookingController(bookingUsecase, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(authClient, sessionService, bookingUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentClient, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(availabilityClient, bootstrap.Logger)
	availabilityController := availability.NewAvailabilityController(availabilityUsecase, bootstrap.Logger)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientClient, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.Logger)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(doctorClient, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	// Admin
	adminUsecase := admin.NewAdminUsecase(statsClient, contactClient, bootstrap.Logger)
	adminController := admin.NewAdminController(adminUsecase, bootstrap.Logger)

	// Public contact form
	contactUsecase := contacts.NewContactUsecase(contactClient, bootstrap.Logger)
	contactController := contacts.NewContactController(contactUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		bookingController,
		appointmentController,
		availabilityController,
		directoryController,
		patientController,
		doctorController,
		adminController,
		contactController,
	)

	return directoryWorker
}
