// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaic

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// VectorMetric is a function that takes two vectors of the same length and
// returns a metric value ("distance") of the two.
// The smaller the value is the more equal the vectors are considered, values
// should be ≥ 0.
type VectorMetric func(p, q []float64) float64

// SquaredDistance returns (p1 - q1)² + ... + (pn - qn)². It is the default
// metric, it selects the same tiles as EuclideanDistance without computing
// the square root.
func SquaredDistance(p, q []float64) float64 {
	var sum float64
	for i, e1 := range p {
		diff := e1 - q[i]
		sum += diff * diff
	}
	return sum
}

// Manhattan returns the manhattan distance of two vectors, that is
// |p1 - q1| + ... + |pn - qn|.
func Manhattan(p, q []float64) float64 {
	return floats.Distance(p, q, 1)
}

// EuclideanDistance returns the euclidean distance of two
// vectors, that is sqrt( (p1 - q1)² + ... + (pn - qn)² ).
func EuclideanDistance(p, q []float64) float64 {
	return floats.Distance(p, q, 2)
}

// ChessboardDistance is the max over all absolute distances,
// see https://reference.wolfram.com/language/ref/ChessboardDistance.html
func ChessboardDistance(p, q []float64) float64 {
	return floats.Distance(p, q, math.Inf(1))
}

// DefaultMetricName is the name of the metric used if none is given.
const DefaultMetricName = "squared"

// The following variables are used for registering named
// metrics.

var (
	metrics map[string]VectorMetric
)

// RegisterMetric is used to register a named metric. It will only add the
// metric if the name does not exist yet. The result is true if the metric was
// successfully registered and false otherwise.
// All names must be lowercase strings, the register and get
// methods will always transform a string to lowercase.
//
// All metrics should be registered by an init method.
func RegisterMetric(name string, metric VectorMetric) bool {
	name = strings.ToLower(name)
	if _, has := metrics[name]; has {
		return false
	}
	metrics[name] = metric
	return true
}

// MetricNames returns the sorted list of all registered metrics.
func MetricNames() []string {
	res := make([]string, 0, len(metrics))
	for key := range metrics {
		res = append(res, key)
	}
	sort.Strings(res)
	return res
}

// GetMetric returns a registered metric.
// Returns the metric and true on success and nil and false
// otherwise.
func GetMetric(name string) (VectorMetric, bool) {
	name = strings.ToLower(name)
	if metric, has := metrics[name]; has {
		return metric, true
	}
	return nil, false
}

func init() {
	metrics = make(map[string]VectorMetric)
	RegisterMetric(DefaultMetricName, SquaredDistance)
	RegisterMetric("manhattan", Manhattan)
	RegisterMetric("euclid", EuclideanDistance)
	RegisterMetric("chessboard", ChessboardDistance)
}
