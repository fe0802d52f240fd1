// Package http wires the application services into a gin engine.
package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	agentapp "deskhub/internal/application/agent"
	agentusecases "deskhub/internal/application/agent/usecases"
	catalogapp "deskhub/internal/application/catalog"
	feedbackapp "deskhub/internal/application/feedback"
	"deskhub/internal/application/forms"
	notificationapp "deskhub/internal/application/notification"
	ticketusecases "deskhub/internal/application/ticket/usecases"
	"deskhub/internal/infrastructure/auth"
	"deskhub/internal/infrastructure/config"
	"deskhub/internal/infrastructure/email"
	"deskhub/internal/infrastructure/ratelimit"
	"deskhub/internal/infrastructure/repository"
	"deskhub/internal/infrastructure/storage"
	"deskhub/internal/interfaces/http/handlers"
	"deskhub/internal/interfaces/http/handlers/admin"
	"deskhub/internal/interfaces/http/handlers/console"
	"deskhub/internal/interfaces/http/handlers/public"
	"deskhub/internal/interfaces/http/middleware"
	"deskhub/internal/shared/db"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/services/markdown"
)

// Container wires repositories, application services, handlers, and
// middleware together from the shared infrastructure handles.
type Container struct {
	db    *gorm.DB
	cfg   *config.Config
	redis *redis.Client
	log   logger.Interface

	repos *repositories

	emailManager *email.Manager
	jwtSvc       *auth.JWTService

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	hdlrs *allHandlers
}

type repositories struct {
	projects       *repository.ProjectRepository
	categories     *repository.CategoryRepository
	statuses       *repository.StatusRepository
	priorities     *repository.PriorityRepository
	fieldTemplates *repository.FieldTemplateRepository
	formFields     *repository.FormFieldRepository
	tickets        *repository.TicketRepository
	comments       *repository.CommentRepository
	attachments    *repository.AttachmentRepository
	agents         *repository.AgentRepository
	feedback       *repository.FeedbackRepository
	templates      *repository.NotificationTemplateRepository
	emailSettings  *repository.EmailSettingsRepository
}

type allHandlers struct {
	auth           *handlers.AuthHandler
	intake         *public.IntakeHandler
	publicFeedback *public.FeedbackHandler
	consoleTickets *console.TicketHandler
	projects       *admin.ProjectHandler
	categories     *admin.CategoryHandler
	taxonomy       *admin.TaxonomyHandler
	fieldTemplates *admin.FieldTemplateHandler
	agents         *admin.AgentHandler
	notifications  *admin.NotificationHandler
	adminFeedback  *admin.FeedbackHandler
}

// NewContainer builds the full dependency graph. The email manager is
// reloaded once so stored SMTP settings take effect before the first send.
func NewContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Container {
	c := &Container{
		db:    db,
		cfg:   cfg,
		redis: redisClient,
		log:   log,
	}

	c.repos = &repositories{
		projects:       repository.NewProjectRepository(db),
		categories:     repository.NewCategoryRepository(db),
		statuses:       repository.NewStatusRepository(db),
		priorities:     repository.NewPriorityRepository(db),
		fieldTemplates: repository.NewFieldTemplateRepository(db),
		formFields:     repository.NewFormFieldRepository(db),
		tickets:        repository.NewTicketRepository(db),
		comments:       repository.NewCommentRepository(db),
		attachments:    repository.NewAttachmentRepository(db),
		agents:         repository.NewAgentRepository(db),
		feedback:       repository.NewFeedbackRepository(db),
		templates:      repository.NewNotificationTemplateRepository(db),
		emailSettings:  repository.NewEmailSettingsRepository(db),
	}

	c.emailManager = email.NewManager(c.repos.emailSettings, cfg.Email, log.Named("email"))
	if err := c.emailManager.Reload(context.Background()); err != nil {
		log.Warnw("failed to load stored email settings, using fallback config", "error", err)
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log.Named("auth"))
	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisLimiter(redisClient),
		cfg.RateLimit.PublicRequests,
		time.Duration(cfg.RateLimit.PublicWindow)*time.Second,
		log.Named("ratelimit"),
	)

	c.buildHandlers()

	return c
}

// VerifyStatusRegistry checks that the seeded status table still carries every
// workflow code the console actions depend on.
func (c *Container) VerifyStatusRegistry(ctx context.Context) error {
	svc := catalogapp.NewStatusService(c.repos.statuses, c.repos.tickets, c.log.Named("catalog"))
	return svc.VerifyWellKnownCodes(ctx)
}

func (c *Container) buildHandlers() {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	markdownSvc := markdown.NewMarkdownService()
	notifier := notificationapp.NewNotifier(repos.templates, c.emailManager, markdownSvc, log.Named("notifier"))
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	diskStore := storage.NewDiskStore(cfg.Uploads.Root)

	schemaBuilder := forms.NewSchemaBuilder(repos.projects, log.Named("forms"))
	formService := forms.NewService(repos.categories, schemaBuilder)
	refs := ticketusecases.NewRefResolver(repos.projects, repos.categories, repos.statuses, repos.priorities, repos.agents)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(
		repos.categories, repos.projects, repos.statuses, repos.priorities,
		repos.tickets, schemaBuilder, notifier, log,
	)
	checkStatusUC := ticketusecases.NewCheckStatusUseCase(
		repos.tickets, repos.comments, repos.attachments, repos.categories, refs, log,
	)
	getTicketUC := ticketusecases.NewGetTicketUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses,
		repos.comments, repos.attachments, repos.categories, refs, log,
	)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(repos.tickets, repos.agents, refs, log)
	pollUC := ticketusecases.NewPollNewTicketsUseCase(listTicketsUC)
	dashboardUC := ticketusecases.NewDashboardUseCase(repos.tickets, repos.agents, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.comments, notifier, log,
	)
	saveAttachUC := ticketusecases.NewSaveAttachmentUseCase(
		repos.tickets, repos.projects, repos.attachments, diskStore, log,
	)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.comments, notifier, log,
	)
	changePriorityUC := ticketusecases.NewChangePriorityUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.priorities, repos.comments, log,
	)
	changeProjectUC := ticketusecases.NewChangeProjectUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.comments, log,
	)
	reassignUC := ticketusecases.NewReassignTicketUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.comments, log,
	)
	claimUC := ticketusecases.NewClaimTicketUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.comments, log,
	)
	resolveUC := ticketusecases.NewResolveTicketUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.comments, notifier, log,
	)
	closeUC := ticketusecases.NewCloseTicketUseCase(
		repos.tickets, repos.agents, repos.projects, repos.statuses, repos.comments, notifier, log,
	)

	loginUC := agentusecases.NewLoginUseCase(repos.agents, hasher, c.jwtSvc, log)
	refreshUC := agentusecases.NewRefreshTokenUseCase(c.jwtSvc, log)

	projectSvc := catalogapp.NewProjectService(repos.projects, repos.categories, repos.tickets, log)
	categorySvc := catalogapp.NewCategoryService(repos.categories, repos.projects, repos.formFields, repos.tickets, log)
	statusSvc := catalogapp.NewStatusService(repos.statuses, repos.tickets, log)
	prioritySvc := catalogapp.NewPriorityService(repos.priorities, repos.tickets, log)
	fieldTemplateSvc := catalogapp.NewFieldTemplateService(repos.fieldTemplates, repos.formFields, log)
	txMgr := db.NewTransactionManager(c.db)
	formFieldSvc := catalogapp.NewFormFieldService(repos.formFields, repos.categories, repos.fieldTemplates, txMgr, log)

	agentAdminSvc := agentapp.NewAdminService(repos.agents, repos.projects, hasher, log)
	feedbackSvc := feedbackapp.NewService(repos.feedback, log)
	notificationAdminSvc := notificationapp.NewAdminService(
		repos.templates, repos.emailSettings, c.emailManager, c.emailManager, log,
	)

	c.hdlrs = &allHandlers{
		auth: handlers.NewAuthHandler(loginUC, refreshUC, log),
		intake: public.NewIntakeHandler(
			categorySvc, formService, createTicketUC, saveAttachUC, checkStatusUC,
			cfg.Uploads.MaxSizeMB, log,
		),
		publicFeedback: public.NewFeedbackHandler(feedbackSvc, log),
		consoleTickets: console.NewTicketHandler(
			dashboardUC, listTicketsUC, pollUC, getTicketUC,
			addCommentUC, saveAttachUC,
			changeStatusUC, changePriorityUC, changeProjectUC,
			reassignUC, claimUC, resolveUC, closeUC,
			cfg.Uploads.MaxSizeMB, log,
		),
		projects:       admin.NewProjectHandler(projectSvc, log),
		categories:     admin.NewCategoryHandler(categorySvc, formFieldSvc, log),
		taxonomy:       admin.NewTaxonomyHandler(statusSvc, prioritySvc, log),
		fieldTemplates: admin.NewFieldTemplateHandler(fieldTemplateSvc, log),
		agents:         admin.NewAgentHandler(agentAdminSvc, log),
		notifications:  admin.NewNotificationHandler(notificationAdminSvc, log),
		adminFeedback:  admin.NewFeedbackHandler(feedbackSvc, log),
	}
}
