package kv

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ValentinKolb/redic/cmd/util"
	"github.com/ValentinKolb/redic/redis/conn"
	"github.com/ValentinKolb/redic/redis/resp"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for redis servers",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix   = "__redic_test"
	perfNumThreads  = 10
	perfNumRequests = 1000
	perfValueSizeB  = 64
)

func init() {
	// add flags
	key := "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark - each thread opens its own connection"))
	key = "requests"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("Number of requests per thread and benchmark"))
	key = "value-size"
	perfTestCmd.Flags().Int(key, 64, util.WrapString("Size of the value for the set benchmark (in bytes)"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	perfNumThreads = viper.GetInt("threads")
	perfNumRequests = viper.GetInt("requests")
	perfValueSizeB = viper.GetInt("value-size")
	return nil
}

func runPerf(cmd *cobra.Command, _ []string) error {
	value := strings.Repeat("x", perfValueSizeB)

	benchmarks := []struct {
		name string
		argv func(thread, i int) []string
	}{
		{"ping", func(int, int) []string {
			return []string{"PING"}
		}},
		{"set", func(thread, i int) []string {
			return []string{"SET", perfKey(thread, i), value}
		}},
		{"get", func(thread, i int) []string {
			return []string{"GET", perfKey(thread, i)}
		}},
	}

	for _, bench := range benchmarks {
		timer := gometrics.NewTimer()

		if err := runPerfThreads(bench.argv, timer); err != nil {
			return err
		}

		ps := timer.Percentiles([]float64{0.5, 0.95, 0.99})
		fmt.Printf("%-6s: %d ops, mean=%s p50=%s p95=%s p99=%s max=%s\n",
			bench.name,
			timer.Count(),
			time.Duration(int64(timer.Mean())),
			time.Duration(int64(ps[0])),
			time.Duration(int64(ps[1])),
			time.Duration(int64(ps[2])),
			time.Duration(timer.Max()),
		)
	}

	// remove the benchmark keys
	for thread := 0; thread < perfNumThreads; thread++ {
		for i := 0; i < perfNumRequests; i++ {
			if _, err := roundTrip("DEL", perfKey(thread, i)); err != nil {
				return err
			}
		}
	}

	return nil
}

// runPerfThreads runs one benchmark with perfNumThreads workers, each on
// its own connection since a single connection must not be shared
func runPerfThreads(argv func(thread, i int) []string, timer gometrics.Timer) error {
	var (
		wg       sync.WaitGroup
		errsMu   sync.Mutex
		firstErr error
	)

	for thread := 0; thread < perfNumThreads; thread++ {
		wg.Add(1)
		go func(thread int) {
			defer wg.Done()

			c, err := conn.New(connection.Options())
			if err != nil {
				errsMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errsMu.Unlock()
				return
			}
			defer c.Close()

			for i := 0; i < perfNumRequests; i++ {
				args := new(resp.CmdArgs)
				for _, part := range argv(thread, i) {
					args.AddString(part)
				}

				start := time.Now()
				if err := c.Send(args); err != nil {
					errsMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errsMu.Unlock()
					return
				}
				if _, err := c.Recv(); err != nil {
					errsMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errsMu.Unlock()
					return
				}
				timer.Update(time.Since(start))
			}
		}(thread)
	}

	wg.Wait()
	return firstErr
}

func perfKey(thread, i int) string {
	return fmt.Sprintf("%s:%d:%d", perfKeyPrefix, thread, i)
}
