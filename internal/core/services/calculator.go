package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/discreta/internal/combinatorics"
	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/core/ports/driven"
	"github.com/custodia-labs/discreta/internal/core/ports/driving"
	"github.com/custodia-labs/discreta/internal/formatter"
	"github.com/custodia-labs/discreta/internal/logger"
	"github.com/custodia-labs/discreta/internal/normaliser"
	"github.com/custodia-labs/discreta/internal/numtheory"
	"github.com/custodia-labs/discreta/internal/sequences"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService runs the request pipeline: normalise, check limits,
// compute, format, then record history.
type CalculatorService struct {
	settings driving.SettingsService
	history  driven.HistoryStore
	sfGroup  singleflight.Group
	now      func() time.Time
}

// NewCalculatorService creates a new calculator service.
// The history parameter is optional (can be nil).
func NewCalculatorService(settings driving.SettingsService, history driven.HistoryStore) *CalculatorService {
	return &CalculatorService{
		settings: settings,
		history:  history,
		now:      time.Now,
	}
}

// Operations returns the catalogue in display order.
func (s *CalculatorService) Operations() []domain.OperationInfo {
	ops := domain.Operations()
	infos := make([]domain.OperationInfo, len(ops))
	for i, op := range ops {
		infos[i] = op.Info()
	}
	return infos
}

// Calculate evaluates one request.
func (s *CalculatorService) Calculate(ctx context.Context, req domain.Request) (*domain.Calculation, error) {
	logger.Section("Calculation")
	logger.Debug("Operation: %q, input: %q", req.Operation, req.RawInput)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op, err := domain.ParseOperation(string(req.Operation))
	if err != nil {
		return nil, err
	}

	in, err := normaliser.Normalise(req.RawInput)
	if err != nil {
		logger.Debug("Normalise failed: %v", err)
		return nil, err
	}
	if err := normaliser.RequireArity(in, op.Arity()); err != nil {
		return nil, err
	}
	logger.Debug("Normalised input: %v", in.Values)

	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := checkLimits(op, in, settings); err != nil {
		logger.Debug("Limit exceeded: %v", err)
		return nil, err
	}

	notation, showSteps := outputOptions(req, settings.Output)
	key := flightKey(op, in, notation, showSteps)

	run := func(ctx context.Context) (any, error) {
		return s.compute(ctx, op, in, settings.Analysis, notation, showSteps)
	}
	v, err, shared := s.sfGroup.Do(key, func() (any, error) { return run(ctx) })
	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}
	// A joined flight inherits the leader's context; recompute when only the
	// leader was cancelled.
	if shared && isContextError(err) {
		logger.Debug("Shared flight for %s was cancelled, recomputing", key)
		v, err = run(ctx)
	}
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("Shared in-flight result for %s", key)
	}

	calc := *v.(*domain.Calculation)
	calc.ID = uuid.New().String()
	calc.CreatedAt = s.now()

	for i, line := range calc.Lines {
		logger.Step(i+1, line)
	}

	s.record(ctx, req.RawInput, &calc, settings.History)
	return &calc, nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func outputOptions(req domain.Request, out domain.OutputSettings) (domain.Notation, bool) {
	notation := out.Notation
	if req.Notation.IsValid() {
		notation = req.Notation
	}
	showSteps := out.ShowSteps
	if req.ShowSteps != nil {
		showSteps = *req.ShowSteps
	}
	return notation, showSteps
}

func flightKey(op domain.Operation, in domain.IntegerInput, notation domain.Notation, showSteps bool) string {
	parts := make([]string, len(in.Values))
	for i, v := range in.Values {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%s(%s)/%s/%t", op, strings.Join(parts, ","), notation, showSteps)
}

// checkLimits enforces the configured upper bounds on n.
func checkLimits(op domain.Operation, in domain.IntegerInput, settings *domain.AppSettings) error {
	limit := settings.Limits.LimitFor(op)
	for _, v := range in.Values {
		if v > limit {
			return domain.InvalidInput(domain.ReasonTooLarge, fmt.Sprintf("%d > %d", v, limit))
		}
	}
	if op == domain.OpAnalyze && settings.Analysis.TotientMethod == domain.TotientScan {
		if n := in.Values[0]; n > settings.Limits.MaxTotientScanN {
			return domain.InvalidInput(domain.ReasonTooLarge,
				fmt.Sprintf("%d > %d for the scan totient method", n, settings.Limits.MaxTotientScanN))
		}
	}
	return nil
}

func (s *CalculatorService) compute(
	ctx context.Context,
	op domain.Operation,
	in domain.IntegerInput,
	analysis domain.AnalysisSettings,
	notation domain.Notation,
	showSteps bool,
) (*domain.Calculation, error) {
	calc := &domain.Calculation{Operation: op, Input: in}

	if op == domain.OpAnalyze {
		profile, err := s.analyse(ctx, in.Values[0], analysis)
		if err != nil {
			return nil, err
		}
		calc.Profile = profile
		calc.Lines = formatter.Profile(profile, notation)
		return calc, nil
	}

	result, err := describe(op, in.Values)
	if err != nil {
		return nil, err
	}
	calc.Result = result

	shown := *result
	if !showSteps {
		shown.Steps = nil
	}
	calc.Lines = formatter.Result(&shown, notation)
	return calc, nil
}

func describe(op domain.Operation, v []int) (*domain.CombinatorialResult, error) {
	switch op {
	case domain.OpCombination:
		return combinatorics.DescribeCombination(v[0], v[1])
	case domain.OpPermutation:
		return combinatorics.DescribePermutation(v[0], v[1])
	case domain.OpBinomial:
		return combinatorics.DescribeBinomial(v[0], v[1])
	case domain.OpStirling2:
		if v[1] > v[0] || (v[0] == 0) != (v[1] == 0) {
			return nil, domain.DomainError(domain.ReasonKOutOfRange, "")
		}
		return combinatorics.DescribeStirling2(v[0], v[1])
	case domain.OpCatalan:
		return combinatorics.DescribeCatalan(v[0])
	case domain.OpBell:
		return combinatorics.DescribeBell(v[0])
	case domain.OpFibonacci:
		return sequences.DescribeFibonacci(v[0])
	case domain.OpLucas:
		return sequences.DescribeLucas(v[0])
	default:
		return nil, &domain.CalcError{Kind: domain.ErrUnknownOperation, Reason: domain.ReasonUnknownOperation, Detail: op.String()}
	}
}

// analyse computes the profile of n. With parallel analysis enabled the
// divisors, factorization and totient run concurrently.
func (s *CalculatorService) analyse(ctx context.Context, n int, cfg domain.AnalysisSettings) (*domain.NumberProfile, error) {
	if n <= 0 {
		return nil, domain.DomainError(domain.ReasonNotPositive, "")
	}

	totient := numtheory.Totient
	if cfg.TotientMethod == domain.TotientScan {
		totient = numtheory.TotientScan
	}
	logger.Debug("Analysing %d (totient: %s, parallel: %t)", n, cfg.TotientMethod, cfg.Parallel)

	var (
		divisors []int
		factors  []domain.PrimePower
		phi      int
	)
	stages := []func() error{
		func() (err error) { divisors, err = numtheory.Divisors(n); return err },
		func() (err error) { factors, err = numtheory.PrimeFactorization(n); return err },
		func() (err error) { phi, err = totient(n); return err },
	}

	if cfg.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for _, stage := range stages {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return stage()
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, stage := range stages {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := stage(); err != nil {
				return nil, err
			}
		}
	}

	return numtheory.NewProfile(n, divisors, factors, phi)
}

// record appends the calculation to history. Failures are logged and never
// fail the calculation.
func (s *CalculatorService) record(ctx context.Context, raw string, calc *domain.Calculation, cfg domain.HistorySettings) {
	if s.history == nil || !cfg.Enabled {
		return
	}

	entry := domain.HistoryEntry{
		ID:        calc.ID,
		Operation: calc.Operation,
		RawInput:  raw,
		Value:     calc.ValueString(),
		Summary:   calc.Summary(),
		CreatedAt: calc.CreatedAt,
	}
	if err := s.history.Append(ctx, entry); err != nil {
		logger.Warn("Failed to record history: %v", err)
		return
	}
	if cfg.Size > 0 {
		if err := s.history.Prune(ctx, cfg.Size); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Failed to prune history: %v", err)
		}
	}
}
