package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/schedule"
)

// Scheduler polls the run-schedule registry on a fixed tick and settles
// every payroll group whose schedule is due. The registry is reloaded each
// tick, so schedule edits and restarts need no coordination.
type Scheduler struct {
	tick           time.Duration
	scheduleRepo   schedule.ScheduleRepository
	payrollService payroll.PayrollService

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(tick time.Duration, scheduleRepo schedule.ScheduleRepository, payrollService payroll.PayrollService) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		tick:           tick,
		scheduleRepo:   scheduleRepo,
		payrollService: payrollService,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start begins polling. The first pass runs immediately so a restart does
// not postpone an already-due schedule by a full tick.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	slog.Info("Payroll scheduler started", "tick", s.tick)
}

// Stop cancels the poll loop and waits for an in-flight pass to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping payroll scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Payroll scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.pass()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.pass()
		}
	}
}

func (s *Scheduler) pass() {
	start := time.Now()
	if err := s.RunDueSchedules(s.ctx, time.Now()); err != nil {
		slog.Error("Scheduler pass failed", "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduler pass completed", "duration", time.Since(start))
}

// RunDueSchedules settles the current month for every enabled, due
// schedule. The derived idempotency key keeps a pass that races its own
// tick from settling a group twice; a duplicate-run conflict still marks
// the schedule so it stays quiet until next month.
func (s *Scheduler) RunDueSchedules(ctx context.Context, now time.Time) error {
	schedules, err := s.scheduleRepo.ListEnabled(ctx)
	if err != nil {
		return err
	}

	month := now.Format("2006-01")

	for _, sc := range schedules {
		if !sc.Due(now) {
			continue
		}

		slog.Info("Scheduled payroll run firing", "payroll_group", sc.PayrollGroup, "month", month)

		_, err := s.payrollService.Generate(ctx, payroll.GenerateRequest{
			Month:          month,
			PayrollGroup:   string(sc.PayrollGroup),
			IdempotencyKey: fmt.Sprintf("sched-%s-%s", sc.PayrollGroup, month),
		})
		if err != nil && !errors.Is(err, payroll.ErrDuplicateRun) {
			slog.Error("Scheduled payroll run failed", "payroll_group", sc.PayrollGroup, "month", month, "error", err)
			continue
		}

		if err := s.scheduleRepo.MarkRun(ctx, sc.PayrollGroup, month); err != nil {
			slog.Error("Failed to mark schedule as run", "payroll_group", sc.PayrollGroup, "month", month, "error", err)
		}
	}

	return nil
}
