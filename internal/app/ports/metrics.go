package ports

type NurseryMetrics interface {
	RecordStateChange(from, to string)
	RecordAlert(kind string)
	RecordCareTasks(executed int)
	RecordMoves(kind string, n int)
	RecordSale(price float64)
}

// MultiMetrics fans every call out to each recorder.
type MultiMetrics []NurseryMetrics

func (m MultiMetrics) RecordStateChange(from, to string) {
	for _, r := range m {
		r.RecordStateChange(from, to)
	}
}

func (m MultiMetrics) RecordAlert(kind string) {
	for _, r := range m {
		r.RecordAlert(kind)
	}
}

func (m MultiMetrics) RecordCareTasks(executed int) {
	for _, r := range m {
		r.RecordCareTasks(executed)
	}
}

func (m MultiMetrics) RecordMoves(kind string, n int) {
	for _, r := range m {
		r.RecordMoves(kind, n)
	}
}

func (m MultiMetrics) RecordSale(price float64) {
	for _, r := range m {
		r.RecordSale(price)
	}
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) RecordStateChange(string, string) {}
func (NopMetrics) RecordAlert(string)               {}
func (NopMetrics) RecordCareTasks(int)              {}
func (NopMetrics) RecordMoves(string, int)          {}
func (NopMetrics) RecordSale(float64)               {}
