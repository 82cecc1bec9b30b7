package rest

import (
	"net/http"
	"os"

	appmember "github.com/erenoa/vrc-shift-scheduler/backend/internal/app/member"
	appschedule "github.com/erenoa/vrc-shift-scheduler/backend/internal/app/schedule"
	appswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/app/swap"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/infra/db"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRouter wires every repository, usecase, and handler and returns the
// fully assembled HTTP router. schedulingConfig is the frozen value built
// once at startup from config.Config; nothing downstream reads env vars
// again.
func NewRouter(dbPool *pgxpool.Pool, schedulingConfig scheduling.SchedulingConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(Recover)
	r.Use(Logger)
	r.Use(CORSWithOrigins(os.Getenv("ALLOWED_ORIGINS")))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	txManager := db.NewPgxTxManager(dbPool)

	memberRepo := db.NewMemberRepository(dbPool)
	scheduleRepo := db.NewScheduleRepository(dbPool)
	assignmentRepo := db.NewAssignmentRepository(dbPool)
	fairnessRepo := db.NewFairnessCountRepository(dbPool)
	auditRepo := db.NewAuditEntryRepository(dbPool)
	unavailableRepo := db.NewUnavailablePeriodRepository(dbPool)
	swapRepo := db.NewSwapRepository(dbPool)

	memberHandler := NewMemberHandler(
		appmember.NewCreateMemberUsecase(memberRepo),
		appmember.NewListMembersUsecase(memberRepo),
		appmember.NewGetMemberUsecase(memberRepo),
		appmember.NewUpdateMemberUsecase(memberRepo),
		appmember.NewDeleteMemberUsecase(memberRepo),
		appmember.NewBulkImportMembersUsecase(memberRepo),
	)

	scheduleHandler := NewScheduleHandler(
		appschedule.NewGenerateScheduleUsecase(
			scheduleRepo, assignmentRepo, memberRepo, unavailableRepo,
			fairnessRepo, auditRepo, txManager, schedulingConfig,
		),
		appschedule.NewRecomputeLedgerUsecase(assignmentRepo, fairnessRepo, schedulingConfig.FairnessWindowDays),
		appschedule.NewListAuditEntriesUsecase(auditRepo),
	)

	swapHandler := NewSwapHandler(
		appswap.NewProposeSwapUsecase(assignmentRepo, memberRepo, unavailableRepo, swapRepo, schedulingConfig),
		appswap.NewDecidePeerUsecase(swapRepo),
		appswap.NewDecideAdminUsecase(swapRepo, assignmentRepo, fairnessRepo, txManager),
		appswap.NewGetSwapUsecase(swapRepo),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Auth)

		r.Route("/members", func(r chi.Router) {
			r.Post("/", memberHandler.CreateMember)
			r.Get("/", memberHandler.ListMembers)
			r.Post("/bulk-import", memberHandler.BulkImportMembers)
			r.Get("/{member_id}", memberHandler.GetMember)
			r.Put("/{member_id}", memberHandler.UpdateMember)
			r.Delete("/{member_id}", memberHandler.DeleteMember)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.With(RateLimitMiddleware(DefaultGenerateRateLimiter())).Post("/generate", scheduleHandler.GenerateSchedule)
			r.Get("/{schedule_id}/audit", scheduleHandler.ListAuditEntries)
		})

		r.Post("/ledger/recompute", scheduleHandler.RecomputeLedger)

		r.Route("/swaps", func(r chi.Router) {
			r.With(RateLimitMiddleware(DefaultSwapRateLimiter())).Post("/", swapHandler.ProposeSwap)
			r.Get("/{swap_id}", swapHandler.GetSwap)
			r.With(RateLimitMiddleware(DefaultSwapRateLimiter())).Post("/{swap_id}/peer-decision", swapHandler.DecidePeer)
			r.With(RateLimitMiddleware(DefaultSwapRateLimiter())).Post("/{swap_id}/admin-decision", swapHandler.DecideAdmin)
		})
	})

	return r
}
