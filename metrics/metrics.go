package metrics

import (
	"context"
	"fmt"
	"reflect"

	"contrib.go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	//every measurement is tagged with the operation name
	OpKey tag.Key

	//Metrics for the host entry points
	OperationMetric   = newOperationMetric()
	PrometheusHandler *prometheus.Exporter
)

type operationMetric struct {
	Calls             *stats.Int64Measure `aggr:"Counter"`
	Failures          *stats.Int64Measure `aggr:"Counter"`
	Operands          *stats.Int64Measure `aggr:"Sum"`
	ParseDegradations *stats.Int64Measure `aggr:"Sum"`
	RegistrySize      *stats.Int64Measure `aggr:"LastValue"`
}

func newOperationMetric() *operationMetric {
	return &operationMetric{
		Calls:             stats.Int64("Calls", "how many times an operation is called", stats.UnitDimensionless),
		Failures:          stats.Int64("Failures", "calls rejected with an argument error", stats.UnitDimensionless),
		Operands:          stats.Int64("Operands", "operands coerced to addresses", "1"),
		ParseDegradations: stats.Int64("ParseDegradations", "malformed text coerced to zero", "1"),
		RegistrySize:      stats.Int64("RegistrySize", "opaque values holding an address", "1"),
	}
}

//Record adds measurements under the tag of op
func Record(op string, ms ...stats.Measurement) {
	if err := stats.RecordWithTags(context.Background(), []tag.Mutator{tag.Upsert(OpKey, op)}, ms...); err != nil {
		fmt.Printf("%v\n", err)
	}
}

//use golang tag to create views from measurements
//https://gist.github.com/drewolson/4771479 is a great example.
func createAppendViews(m interface{}, list []*view.View) []*view.View {
	val := reflect.ValueOf(m).Elem()
	for i := 0; i < val.NumField(); i++ {
		typeField := val.Type().Field(i)
		valueField, _ := val.Field(i).Interface().(*stats.Int64Measure)
		golangTag := typeField.Tag
		v := &view.View{
			Name:        valueField.Name(),
			Description: valueField.Description(),
			Measure:     valueField,
			TagKeys:     []tag.Key{OpKey},
		}
		//aggregation
		var aggr *view.Aggregation
		switch golangTag.Get("aggr") {
		case "Counter":
			aggr = view.Count()
		case "LastValue":
			aggr = view.LastValue()
		case "Sum":
			aggr = view.Sum()
		default:
			panic("now we only suppport Counter, Sum and LastValue")
		}
		v.Aggregation = aggr

		list = append(list, v)
	}
	return list
}

func init() {
	var err error
	OpKey, err = tag.NewKey("op")
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}

	viewList := make([]*view.View, 0)
	viewList = createAppendViews(OperationMetric, viewList)

	if err := view.Register(viewList...); err != nil {
		panic("failed to register view")
	}

	PrometheusHandler, err = prometheus.NewExporter(prometheus.Options{
		Namespace: "addrbit",
		OnError:   func(err error) { fmt.Printf("%v\n", err) },
	})
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}

	view.RegisterExporter(PrometheusHandler)
}
