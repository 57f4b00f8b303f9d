package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/phanxgames/lattice"
)

// Collector reports the shape of one scenegraph. It implements
// prometheus.Collector; register it with a registry and scrape as usual.
type Collector struct {
	root *lattice.RootNode

	layerNodes   *prometheus.Desc
	layerOutputs *prometheus.Desc
	structure    *prometheus.Desc
}

// NewCollector creates a collector over root.
func NewCollector(root *lattice.RootNode) *Collector {
	return &Collector{
		root: root,
		layerNodes: prometheus.NewDesc(
			"lattice_layer_nodes",
			"Number of nodes in a stacking layer's subtree, the layer node included.",
			[]string{"layer"}, nil,
		),
		layerOutputs: prometheus.NewDesc(
			"lattice_layer_outputs",
			"Number of enabled output containers in a stacking layer.",
			[]string{"layer"}, nil,
		),
		structure: prometheus.NewDesc(
			"lattice_structure_nodes",
			"Total structure nodes in the tree, the root included.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.layerNodes
	ch <- c.layerOutputs
	ch <- c.structure
}

// Collect implements prometheus.Collector by walking the tree read-only.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	structure := 1 // the root itself
	for l := lattice.Layer(0); l < lattice.NumLayers; l++ {
		layer := c.root.Layers(l)

		nodes, structureInLayer := countSubtree(layer)
		structure += structureInLayer

		outputs := 0
		for _, child := range layer.Children() {
			if child.IsStructure() {
				outputs++
			}
		}

		ch <- prometheus.MustNewConstMetric(
			c.layerNodes, prometheus.GaugeValue, float64(nodes), l.String())
		ch <- prometheus.MustNewConstMetric(
			c.layerOutputs, prometheus.GaugeValue, float64(outputs), l.String())
	}
	ch <- prometheus.MustNewConstMetric(
		c.structure, prometheus.GaugeValue, float64(structure))
}

// container matches every node type that owns children, without naming the
// concrete lattice types.
type container interface {
	Children() []lattice.Node
}

// countSubtree counts the nodes and structure nodes of n's subtree,
// including n.
func countSubtree(n lattice.Node) (nodes, structure int) {
	nodes = 1
	if n.IsStructure() {
		structure = 1
	}
	if c, ok := n.(container); ok {
		for _, child := range c.Children() {
			cn, cs := countSubtree(child)
			nodes += cn
			structure += cs
		}
	}
	return nodes, structure
}
