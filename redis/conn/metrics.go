package conn

import "github.com/VictoriaMetrics/metrics"

// Counters exposed for scraping via metrics.WritePrometheus. They track
// the connection core only; command-level instrumentation belongs to the
// layers above.
var (
	metricConnects        = metrics.NewCounter(`redic_connects_total`)
	metricConnectFailures = metrics.NewCounter(`redic_connect_failures_total`)
	metricReconnects      = metrics.NewCounter(`redic_reconnects_total`)
	metricCommands        = metrics.NewCounter(`redic_commands_sent_total`)
	metricReplies         = metrics.NewCounter(`redic_replies_total`)
	metricReplyErrors     = metrics.NewCounter(`redic_reply_errors_total`)
	metricSendErrors      = metrics.NewCounter(`redic_send_errors_total`)
	metricRecvErrors      = metrics.NewCounter(`redic_recv_errors_total`)
)
