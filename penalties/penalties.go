// Package penalties provides weight regularization for PAGNNs. A Penalty adds its derivative to
// each weight's gradient before the Optimizer runs; biases are never penalized. Penalties are
// not saved with the Network; reattach one with Pen after loading if training continues.
package penalties

import (
	"math"
)

type l2 struct {
	lambda float64
}

// L2 returns weight decay: the penalty λ/2·w² is added to the cost for every synapse, pulling
// weights toward zero proportionally to their size.
func L2(lambda float64) *l2 {
	return &l2{lambda}
}

// WeightDecay is a proxy for L2
func WeightDecay(lambda float64) *l2 {
	return L2(lambda)
}

func (p *l2) TypeString() string {
	return "l2"
}

func (p *l2) Deriv(weight float64) float64 {
	return p.lambda * weight
}

type l1 struct {
	lambda float64
}

// L1 returns the lasso penalty λ·|w|, pushing small weights all the way to zero.
func L1(lambda float64) *l1 {
	return &l1{lambda}
}

func (p *l1) TypeString() string {
	return "l1"
}

func (p *l1) Deriv(weight float64) float64 {
	if weight == 0 {
		return 0
	}

	return p.lambda * math.Copysign(1, weight)
}
