// Standalone draw distribution analysis for the outcome resolver.
// Simulates many commit-reveal cycles with random secrets and entropy and
// checks that the empirical bucket frequencies match the configured weights.
//
// Run with: go run ./scripts/drawsim
package main

import (
	"crypto/rand"
	"fmt"
	"math"

	"zoltaran/domain/entities"
	"zoltaran/domain/services"
)

func main() {
	fmt.Println("=== Zoltaran Draw Distribution Analysis ===")

	cfg := &entities.GameConfig{
		ProbGranted:    2000,
		ProbTokens250:  1000,
		ProbTokens500:  800,
		ProbTokens1000: 200,
		ProbFreeSpin:   1000,
	}

	analyzeDistribution(cfg, 1_000_000)

	fmt.Println("\n=== Skewed Weights ===")
	skewed := &entities.GameConfig{
		ProbGranted:    1,
		ProbTokens250:  9999,
		ProbTokens500:  0,
		ProbTokens1000: 0,
		ProbFreeSpin:   0,
	}
	analyzeDistribution(skewed, 1_000_000)
}

func analyzeDistribution(cfg *entities.GameConfig, trials int) {
	counts := make(map[entities.OutcomeCode]int)

	secret := make([]byte, 16)
	entropy := make([]byte, 32)
	for i := 0; i < trials; i++ {
		rand.Read(secret)
		rand.Read(entropy)
		player := fmt.Sprintf("player%d", i%1000)

		code, _, _ := services.ResolveOutcome(cfg, string(secret), entropy, player)
		counts[code]++
	}

	weights := cfg.Weights()
	codes := []entities.OutcomeCode{
		entities.OutcomeWishGranted,
		entities.OutcomeTokens250,
		entities.OutcomeTokens500,
		entities.OutcomeTokens1000,
		entities.OutcomeFreeSpin,
	}

	var allocated int64
	chiSquared := 0.0
	for i, code := range codes {
		allocated += weights[i]
		report(code.String(), counts[code], trials, weights[i], &chiSquared)
	}
	report("try_again", counts[entities.OutcomeTryAgain], trials, entities.ProbabilityScale-allocated, &chiSquared)

	fmt.Printf("chi-squared over %d trials: %.2f\n", trials, chiSquared)
}

func report(name string, observed, trials int, weight int64, chiSquared *float64) {
	expected := float64(trials) * float64(weight) / float64(entities.ProbabilityScale)
	actualRate := float64(observed) / float64(trials)
	expectedRate := float64(weight) / float64(entities.ProbabilityScale)

	if expected > 0 {
		*chiSquared += math.Pow(float64(observed)-expected, 2) / expected
	}

	status := "PASS"
	if math.Abs(actualRate-expectedRate) > 0.002 && weight > 0 {
		status = "FAIL"
	}
	if weight == 0 && observed > 0 {
		status = "FAIL"
	}

	fmt.Printf("%-12s | expected %.4f | actual %.4f | n=%d | %s\n",
		name, expectedRate, actualRate, observed, status)
}
