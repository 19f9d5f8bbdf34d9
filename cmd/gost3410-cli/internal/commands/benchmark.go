package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

const benchmarkMessageSize = 256

// BenchmarkConfig describes one benchmark run
type BenchmarkConfig struct {
	PrivateKey    *gost3410.PrivateKey
	HashAlgorithm string
	Iterations    int
	Workers       int
	Logger        logger.Logger
}

// BenchmarkReport summarizes sign latencies in milliseconds across all workers
type BenchmarkReport struct {
	Signatures       int
	Mean             float64
	Median           float64
	StdDev           float64
	Percentile95     float64
	MeanNonceDraws   float64
	VerificationFail int
}

// String formats the report for the log
func (r *BenchmarkReport) String() string {
	return fmt.Sprintf("signatures=%d mean=%.3fms median=%.3fms stddev=%.3fms p95=%.3fms nonce-draws/signature=%.3f verification-failures=%d",
		r.Signatures, r.Mean, r.Median, r.StdDev, r.Percentile95, r.MeanNonceDraws, r.VerificationFail)
}

// RunBenchmark signs and verifies Iterations random messages on each of Workers independent sessions.
// Sessions share only the immutable private key and its public half.
func RunBenchmark(ctx context.Context, cfg BenchmarkConfig) (*BenchmarkReport, error) {
	if cfg.PrivateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	if cfg.Iterations <= 0 || cfg.Workers <= 0 {
		return nil, fmt.Errorf("iterations and workers must be positive, got %d and %d", cfg.Iterations, cfg.Workers)
	}

	publicKey := cfg.PrivateKey.Public()
	nonces := cryptography.NewCountingNonceSource(cryptography.DefaultNonceSource())

	var (
		mu        sync.Mutex
		latencies = make(stats.Float64Data, 0, cfg.Iterations*cfg.Workers)
		failures  int
	)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			signer, err := cryptography.NewGOST3410Signer(cfg.Logger)
			if err != nil {
				return err
			}
			if err := signer.Init(gost3410.RoleSigning, cfg.PrivateKey, nonces); err != nil {
				return err
			}
			verifier, err := cryptography.NewGOST3410Signer(cfg.Logger)
			if err != nil {
				return err
			}
			if err := verifier.Init(gost3410.RoleVerifying, publicKey, nil); err != nil {
				return err
			}

			local := make([]float64, 0, cfg.Iterations)
			localFailures := 0
			message := make([]byte, benchmarkMessageSize)

			for i := 0; i < cfg.Iterations; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := rand.Read(message); err != nil {
					return fmt.Errorf("failed to generate message: %w", err)
				}
				digest, err := cryptography.Digest(cfg.HashAlgorithm, message)
				if err != nil {
					return err
				}

				start := time.Now()
				sig, err := signer.GenerateSignature(digest)
				if err != nil {
					return err
				}
				local = append(local, float64(time.Since(start).Microseconds())/1000)

				valid, err := verifier.VerifySignature(digest, sig.R, sig.S)
				if err != nil {
					return err
				}
				if !valid {
					localFailures++
				}
			}

			mu.Lock()
			latencies = append(latencies, local...)
			failures += localFailures
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("benchmark aborted: %w", err)
	}

	report := &BenchmarkReport{
		Signatures:       len(latencies),
		MeanNonceDraws:   float64(nonces.Draws()) / float64(len(latencies)),
		VerificationFail: failures,
	}

	var err error
	if report.Mean, err = latencies.Mean(); err != nil {
		return nil, err
	}
	if report.Median, err = latencies.Median(); err != nil {
		return nil, err
	}
	if report.StdDev, err = latencies.StandardDeviation(); err != nil {
		return nil, err
	}
	if report.Percentile95, err = latencies.Percentile(95); err != nil {
		return nil, err
	}

	return report, nil
}
