package ml

import "fmt"

// TreeNode is one node of a boosted tree, stored in a flat array.
// Leaf is set on terminal nodes; otherwise samples with
// x[Feature] < Threshold descend to Left, the rest to Right.
type TreeNode struct {
	Feature   int      `json:"feature"`
	Threshold float64  `json:"threshold"`
	Left      int      `json:"left"`
	Right     int      `json:"right"`
	Leaf      *float64 `json:"leaf,omitempty"`
}

// TreeEnsemble scores samples with a gradient-boosted tree ensemble
// exported from training: the margin is BaseScore plus the sum of one
// leaf value per tree, pushed through the logistic link.
type TreeEnsemble struct {
	columns   int
	baseScore float64
	trees     [][]TreeNode
}

// NewTreeEnsemble validates the exported trees and returns a scorer.
// baseScore is in margin (log-odds) space.
func NewTreeEnsemble(columns int, baseScore float64, trees [][]TreeNode) (*TreeEnsemble, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("invalid feature count: %d", columns)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("ensemble has no trees")
	}
	for ti, tree := range trees {
		if len(tree) == 0 {
			return nil, fmt.Errorf("tree %d is empty", ti)
		}
		for ni, node := range tree {
			if node.Leaf != nil {
				continue
			}
			if node.Feature < 0 || node.Feature >= columns {
				return nil, fmt.Errorf("tree %d node %d: feature index %d out of range", ti, ni, node.Feature)
			}
			if node.Left < 0 || node.Left >= len(tree) || node.Right < 0 || node.Right >= len(tree) {
				return nil, fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
		}
	}
	return &TreeEnsemble{columns: columns, baseScore: baseScore, trees: trees}, nil
}

// Score returns the positive-class probability for each row.
func (e *TreeEnsemble) Score(x [][]float64) ([]float64, error) {
	if err := checkMatrix(x, e.columns); err != nil {
		return nil, err
	}

	proba := make([]float64, len(x))
	for i, row := range x {
		margin := e.baseScore
		for _, tree := range e.trees {
			margin += leafValue(tree, row)
		}
		proba[i] = sigmoid(margin)
	}
	return proba, nil
}

func leafValue(tree []TreeNode, row []float64) float64 {
	node := tree[0]
	for node.Leaf == nil {
		if row[node.Feature] < node.Threshold {
			node = tree[node.Left]
		} else {
			node = tree[node.Right]
		}
	}
	return *node.Leaf
}
