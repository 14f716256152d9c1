// Package metrics exposes application metrics collectors.
package metrics

const (
	namespace = "blockfile_indexer"
	unknown   = "unknown"
)

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
