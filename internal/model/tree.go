package model

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Seed fixes the feature permutation used while growing trees.
const Seed int64 = 42

var errEmptyTrainingSet = errors.New("empty training set")

// Tree is a binary CART classifier over integer-coded categorical features.
// Splits minimize weighted Gini impurity; nodes are split until pure or
// until no feature separates the samples.
type Tree struct {
	root      *treeNode
	nFeatures int
}

type treeNode struct {
	leaf      bool
	value     bool
	feature   int
	threshold float64
	left      *treeNode // samples with x[feature] <= threshold
	right     *treeNode
}

// FitTree grows a tree on x (one []int per sample, all the same width) and labels y.
// The result depends only on x, y and seed.
func FitTree(x [][]int, y []bool, seed int64) (*Tree, error) {
	if len(x) == 0 {
		return nil, errEmptyTrainingSet
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("feature rows (%d) and labels (%d) differ", len(x), len(y))
	}
	nFeatures := len(x[0])
	for i, row := range x {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("sample %d has %d features, want %d", i, len(row), nFeatures)
		}
	}

	b := &treeBuilder{x: x, y: y, rng: rand.New(rand.NewSource(seed)), nFeatures: nFeatures}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	return &Tree{root: b.build(idx), nFeatures: nFeatures}, nil
}

// Predict classifies a single sample.
func (t *Tree) Predict(sample []int) (bool, error) {
	if len(sample) != t.nFeatures {
		return false, fmt.Errorf("sample has %d features, want %d", len(sample), t.nFeatures)
	}
	n := t.root
	for !n.leaf {
		if float64(sample[n.feature]) <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value, nil
}

// Depth returns the number of splits on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	return depth(t.root)
}

// Leaves returns the number of leaf nodes.
func (t *Tree) Leaves() int {
	return leaves(t.root)
}

func depth(n *treeNode) int {
	if n.leaf {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}

func leaves(n *treeNode) int {
	if n.leaf {
		return 1
	}
	return leaves(n.left) + leaves(n.right)
}

type treeBuilder struct {
	x         [][]int
	y         []bool
	rng       *rand.Rand
	nFeatures int
}

func (b *treeBuilder) build(idx []int) *treeNode {
	pos := b.countPositive(idx)
	if pos == 0 || pos == len(idx) {
		return &treeNode{leaf: true, value: pos > 0}
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		// Majority vote; ties go to not productive.
		return &treeNode{leaf: true, value: pos*2 > len(idx)}
	}

	var left, right []int
	for _, i := range idx {
		if float64(b.x[i][feature]) <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      b.build(left),
		right:     b.build(right),
	}
}

// bestSplit scans features in a seeded random order and thresholds in
// ascending order. The first split with the lowest weighted impurity wins.
func (b *treeBuilder) bestSplit(idx []int) (int, float64, bool) {
	bestFeature := -1
	bestThreshold := 0.0
	bestImpurity := 0.0

	for _, f := range b.rng.Perm(b.nFeatures) {
		values := b.distinctValues(idx, f)
		for k := 0; k+1 < len(values); k++ {
			threshold := float64(values[k]+values[k+1]) / 2

			var nl, pl, nr, pr int
			for _, i := range idx {
				if float64(b.x[i][f]) <= threshold {
					nl++
					if b.y[i] {
						pl++
					}
				} else {
					nr++
					if b.y[i] {
						pr++
					}
				}
			}

			n := float64(len(idx))
			impurity := float64(nl)/n*gini(pl, nl) + float64(nr)/n*gini(pr, nr)
			if bestFeature < 0 || impurity < bestImpurity {
				bestFeature = f
				bestThreshold = threshold
				bestImpurity = impurity
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func (b *treeBuilder) distinctValues(idx []int, f int) []int {
	seen := make(map[int]bool)
	var values []int
	for _, i := range idx {
		v := b.x[i][f]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Ints(values)
	return values
}

func (b *treeBuilder) countPositive(idx []int) int {
	pos := 0
	for _, i := range idx {
		if b.y[i] {
			pos++
		}
	}
	return pos
}

// gini returns the Gini impurity of a node with pos positives out of n samples.
func gini(pos, n int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(pos) / float64(n)
	return 1 - p*p - (1-p)*(1-p)
}
