package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andrefarias-dev/briefing-backend/internal/infra/database"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/http/handlers"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/http/middleware"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/integration/n8n"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/integration/supabase"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/mail"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/queue"
	"github.com/andrefarias-dev/briefing-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	// 1. Store de leads: banco próprio quando DATABASE_URL existe,
	// senão o REST do Supabase.
	var store usecase.LeadStore
	var db *sql.DB
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("❌ Falha ao conectar no Postgres: %v", err)
		}
		defer db.Close()
		store = database.NewLeadRepository(db)
		log.Println("🗄️ Leads no Postgres local")
	} else {
		store = supabase.NewClient(supabaseURL, supabaseAnonKey)
		log.Println("☁️ Leads no Supabase REST")
	}

	// 2. Auth (GoTrue)
	authClient := supabase.NewAuthClient(supabaseURL, supabaseAnonKey)

	// 3. Webhook de automação (opcional)
	var notifier usecase.Notifier
	if webhookURL := os.Getenv("N8N_WEBHOOK_URL"); webhookURL != "" {
		notifier = n8n.NewClient(webhookURL)
	}

	// 4. Fila + worker de email (opcionais, andam juntos)
	var producer usecase.QueueProducerInterface
	var rabbitConn *amqp.Connection
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatalf("❌ Falha ao conectar no RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		if mailHost := os.Getenv("MAIL_HOST"); mailHost != "" {
			mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
			if mailPort == 0 {
				mailPort = 587
			}
			mailSender := mail.NewEmailSender(
				mailHost, mailPort,
				os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
				os.Getenv("MAIL_FROM"), os.Getenv("MAIL_TO"),
			)
			worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go worker.Start(queue.QueueName)
		}
	}

	// 5. UseCases e Handlers
	submitUC := usecase.NewSubmitBriefingUseCase(store, notifier, producer)

	briefingHandler := handlers.NewBriefingHandler(submitUC)
	adminHandler := handlers.NewAdminHandler(authClient, store)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Formulário público
	r.Get("/briefing/catalog", briefingHandler.HandleCatalog)
	r.Post("/briefing", briefingHandler.HandleSubmit)
	r.Route("/briefing/sessions", func(r chi.Router) {
		r.Post("/", briefingHandler.HandleCreateSession)
		r.Get("/{id}", briefingHandler.HandleGetSession)
		r.Patch("/{id}", briefingHandler.HandleUpdateField)
		r.Post("/{id}/next", briefingHandler.HandleNext)
		r.Post("/{id}/back", briefingHandler.HandleBack)
		r.Post("/{id}/submit", briefingHandler.HandleSessionSubmit)
	})

	// Painel admin: tudo atrás do gate de sessão, menos o login
	r.Post("/admin/login", adminHandler.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(authClient))
		r.Post("/admin/logout", adminHandler.HandleLogout)
		r.Get("/admin/leads", adminHandler.HandleListLeads)
		r.Post("/admin/leads/refresh", adminHandler.HandleRefresh)
		r.Post("/admin/leads/{id}/expand", adminHandler.HandleToggleExpand)
		r.Patch("/admin/leads/{id}/status", adminHandler.HandleUpdateStatus)
		r.Delete("/admin/leads/{id}", adminHandler.HandleDelete)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Briefing API rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
