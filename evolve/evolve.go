// Package evolve provides gradient-free search over whole PAGNNs. A population of genomes --
// networks paired with scores -- is improved generation by generation through score-weighted
// parent selection, single-point crossover, and random weight mutation, with the best genome
// always carried forward unchanged.
package evolve

import (
	"context"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/utils"
)

// Generator produces a fresh, finalized Network with random weights. All Networks produced by
// one Generator must share an architecture, so that their parameters can be crossed over.
type Generator func() (*pagnn.Network, error)

// Evaluator scores a Network; higher is better. Evaluators may be called from multiple
// goroutines at once, but never with the same Network.
type Evaluator func(*pagnn.Network) (float64, error)

// Genome pairs a Network with its most recent score.
type Genome struct {
	ID    uuid.UUID
	Net   *pagnn.Network
	Score float64
}

// Config holds the search settings. The zero value of any field falls back to the defaults
// noted on it.
type Config struct {
	// PopulationSize is the number of genomes per generation. Defaults to 100.
	PopulationSize int

	// Generations is the number of generations Run iterates. Defaults to 10.
	Generations int

	// Strategy is either "evolutionary" (crossover and mutation) or "random" (every
	// generation is fresh). Defaults to "evolutionary".
	Strategy string

	// WeightProb and BiasProb are the per-parameter mutation probabilities. They default to
	// 1e-4 and 1e-2.
	WeightProb float64
	BiasProb   float64

	// MaxMagnitude bounds the size of a single mutation; perturbations are uniform in
	// (-MaxMagnitude, MaxMagnitude). Defaults to 0.5.
	MaxMagnitude float64

	// RandomFraction is the fraction of each new generation that is freshly initialized
	// instead of bred. Defaults to 0.1.
	RandomFraction float64
}

const (
	// StrategyEvolutionary breeds each generation from the previous one.
	StrategyEvolutionary = "evolutionary"

	// StrategyRandom regenerates the whole population every generation.
	StrategyRandom = "random"
)

func (cfg Config) withDefaults() Config {
	if cfg.PopulationSize == 0 {
		cfg.PopulationSize = 100
	}
	if cfg.Generations == 0 {
		cfg.Generations = 10
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyEvolutionary
	}
	if cfg.WeightProb == 0 {
		cfg.WeightProb = 1e-4
	}
	if cfg.BiasProb == 0 {
		cfg.BiasProb = 1e-2
	}
	if cfg.MaxMagnitude == 0 {
		cfg.MaxMagnitude = 0.5
	}
	if cfg.RandomFraction == 0 {
		cfg.RandomFraction = 0.1
	}

	return cfg
}

// Population is a fixed-size set of genomes sharing one architecture.
type Population struct {
	cfg     Config
	gen     Generator
	genomes []*Genome
}

// NewPopulation builds a population of freshly generated genomes. The first generation is
// always random, regardless of strategy.
func NewPopulation(cfg Config, gen Generator) (*Population, error) {
	if gen == nil {
		return nil, errors.Errorf("Generator is nil")
	}

	cfg = cfg.withDefaults()
	p := &Population{cfg: cfg, gen: gen}

	for i := 0; i < cfg.PopulationSize; i++ {
		g, err := p.fresh()
		if err != nil {
			return nil, err
		}

		p.genomes = append(p.genomes, g)
	}

	return p, nil
}

// Genomes returns the current members of the population. The slice is shared; it is replaced,
// not modified, by Next.
func (p *Population) Genomes() []*Genome {
	return p.genomes
}

func (p *Population) fresh() (*Genome, error) {
	net, err := p.gen()
	if err != nil {
		return nil, errors.Wrapf(err, "Generator failed\n")
	} else if net.TotalNeurons() < 0 {
		return nil, pagnn.ErrNetNotFinalized
	}

	return &Genome{ID: uuid.New(), Net: net}, nil
}

// Mutate perturbs a genome's parameters in place. Each weight is hit with probability
// WeightProb and each bias with probability BiasProb; perturbations are uniform within
// ±MaxMagnitude. Synapses outside of the structure mask stay untouched.
func (p *Population) Mutate(g *Genome) {
	ps := g.Net.Params()
	n := g.Net.TotalNeurons()
	wsize := n * n

	for i := range ps {
		prob := p.cfg.WeightProb
		if i >= wsize {
			prob = p.cfg.BiasProb
		}

		if rand.Float64() < prob {
			ps[i] += (rand.Float64() - 0.5) * (p.cfg.MaxMagnitude * 2)
		}
	}

	g.Net.SetParams(ps)
}

// Crossover breeds a child from two parents: the child takes a prefix of the weights from 'a'
// and the rest from 'b', with an independent split point for the biases, and is then mutated.
func (p *Population) Crossover(a, b *Genome) (*Genome, error) {
	child, err := p.fresh()
	if err != nil {
		return nil, err
	}

	pa := a.Net.Params()
	pb := b.Net.Params()

	n := a.Net.TotalNeurons()
	wsize := n * n

	wShare := int(rand.Float64() * float64(wsize))
	bShare := int(rand.Float64() * float64(n))

	ps := make([]float64, len(pa))
	for i := 0; i < wsize; i++ {
		if i < wShare {
			ps[i] = pa[i]
		} else {
			ps[i] = pb[i]
		}
	}
	for i := 0; i < n; i++ {
		if i < bShare {
			ps[wsize+i] = pa[wsize+i]
		} else {
			ps[wsize+i] = pb[wsize+i]
		}
	}

	if err = child.Net.SetParams(ps); err != nil {
		return nil, errors.Wrapf(err, "Parents do not fit the generated child\n")
	}

	p.Mutate(child)
	return child, nil
}

// Next replaces the population with the next generation, given one score per current genome.
// Under the evolutionary strategy the best genome is carried over unchanged, most of the rest
// are bred from parents sampled in proportion to the softmax of the normalized scores, and a
// RandomFraction of the population is freshly initialized.
func (p *Population) Next(scores []float64) error {
	if len(scores) != len(p.genomes) {
		return errors.Errorf("Need exactly one score per genome (%d != %d)", len(scores), len(p.genomes))
	}

	size := p.cfg.PopulationSize

	if p.cfg.Strategy == StrategyRandom {
		genomes := make([]*Genome, 0, size)
		for i := 0; i < size; i++ {
			g, err := p.fresh()
			if err != nil {
				return err
			}
			genomes = append(genomes, g)
		}

		p.genomes = genomes
		return nil
	} else if p.cfg.Strategy != StrategyEvolutionary {
		return errors.Errorf("Unknown strategy %q", p.cfg.Strategy)
	}

	probs := selectionProbs(scores)
	numRandom := int(p.cfg.RandomFraction * float64(size))

	// keep best
	bestIdx := 0
	for i := range scores {
		if scores[i] > scores[bestIdx] {
			bestIdx = i
		}
	}

	genomes := make([]*Genome, 0, size)
	genomes = append(genomes, p.genomes[bestIdx])

	for len(genomes) < size-numRandom {
		a := p.genomes[sampleIndex(probs)]
		b := p.genomes[sampleIndex(probs)]

		child, err := p.Crossover(a, b)
		if err != nil {
			return err
		}

		genomes = append(genomes, child)
	}

	for len(genomes) < size {
		g, err := p.fresh()
		if err != nil {
			return err
		}
		genomes = append(genomes, g)
	}

	p.genomes = genomes
	return nil
}

// selectionProbs turns raw scores into a probability distribution: normalize by the L2 norm to
// tame the scale, then softmax.
func selectionProbs(scores []float64) []float64 {
	var norm float64
	for _, s := range scores {
		norm += s * s
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		norm = 1
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s / norm)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	return probs
}

func sampleIndex(probs []float64) int {
	r := rand.Float64()
	var acc float64
	for i, p := range probs {
		acc += p
		if r < acc {
			return i
		}
	}

	return len(probs) - 1
}

// Run iterates the full search: evaluate every genome, log the generation, breed the next one.
// Evaluation runs in parallel across the population. Run returns the best genome ever seen
// (reconstructed from its recorded parameters, so later mutation cannot have touched it), and
// stops early if ctx is cancelled.
func Run(ctx context.Context, logger zerolog.Logger, cfg Config, gen Generator, eval Evaluator) (*Genome, error) {
	if eval == nil {
		return nil, errors.Errorf("Evaluator is nil")
	}

	cfg = cfg.withDefaults()

	pop, err := NewPopulation(cfg, gen)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to build initial population\n")
	}

	bestScore := math.Inf(-1)
	var bestParams []float64
	var bestID uuid.UUID

	for generation := 0; generation < cfg.Generations; generation++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		genomes := pop.Genomes()
		scores := make([]float64, len(genomes))
		errs := make([]error, len(genomes))

		utils.MultiThread(0, len(genomes), func(i int) {
			scores[i], errs[i] = eval(genomes[i].Net)
			genomes[i].Score = scores[i]
		}, 1, 1)

		for i, e := range errs {
			if e != nil {
				return nil, errors.Wrapf(e, "Evaluating genome %s failed\n", genomes[i].ID)
			}
		}

		for i, s := range scores {
			if s > bestScore {
				bestScore = s
				bestParams = genomes[i].Net.Params()
				bestID = genomes[i].ID
			}
		}

		logger.Info().
			Int("generation", generation).
			Float64("best_score", bestScore).
			Str("best_genome", bestID.String()).
			Msg("generation complete")

		if generation != cfg.Generations-1 {
			if err := pop.Next(scores); err != nil {
				return nil, errors.Wrapf(err, "Failed to build generation %d\n", generation+1)
			}
		}
	}

	net, err := gen()
	if err != nil {
		return nil, errors.Wrapf(err, "Generator failed\n")
	}
	if err = net.SetParams(bestParams); err != nil {
		return nil, errors.Wrapf(err, "Failed to rebuild best genome\n")
	}

	return &Genome{ID: bestID, Net: net, Score: bestScore}, nil
}
