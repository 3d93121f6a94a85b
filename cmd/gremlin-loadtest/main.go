// gremlin-loadtest is a tiny, dependency-light load generator for a
// Gremlin server. It reuses a fixed pool of connections (no per-request
// dial) and supports concurrency so ad-hoc throughput runs don't need an
// external tool.
//
// Modes:
//   - read:  repeatedly run g.V().hasLabel(label).count() against the read pool
//   - write: repeatedly run g.addV(label).property("seq",i) against the write pool
//
// Usage examples:
//
//	gremlin-loadtest -endpoint=ws://127.0.0.1:8182/gremlin -mode=read -n=5000 -c=16
//	gremlin-loadtest -endpoint=ws://127.0.0.1:8182/gremlin -mode=write -n=2000 -c=8
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/strattonite/gremlin-go/driver"
	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/process"
)

type modeType string

const (
	modeRead  modeType = "read"
	modeWrite modeType = "write"
)

func main() {
	var (
		endpoint = flag.String("endpoint", "ws://127.0.0.1:8182/gremlin", "gremlin server websocket endpoint (used for both read and write unless -write_endpoint is set)")
		writeEP  = flag.String("write_endpoint", "", "write endpoint, if different from -endpoint")
		modeS    = flag.String("mode", string(modeRead), "Mode: read|write")
		label    = flag.String("label", "loadtest", "vertex label used by read (has filter) and write (addV) traversals")
		n        = flag.Int("n", 5000, "Total requests to send")
		conc     = flag.Int("c", 8, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", 20*time.Second, "Overall run timeout")
		reqTO    = flag.Duration("request_timeout", 5*time.Second, "Per-request timeout")
	)
	flag.Parse()

	m := modeType(strings.ToLower(*modeS))
	if m != modeRead && m != modeWrite {
		fmt.Fprintf(os.Stderr, "unknown -mode=%s (want read|write)\n", *modeS)
		os.Exit(2)
	}
	if *n <= 0 || *conc <= 0 {
		fmt.Fprintln(os.Stderr, "-n and -c must be > 0")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := driver.NewPool(ctx, driver.Options{
		ReadEndpoint:  *endpoint,
		WriteEndpoint: *writeEP,
		SingleEndpoint: func() string {
			if *writeEP == "" {
				return *endpoint
			}
			return ""
		}(),
		ReadClients:  *conc,
		WriteClients: *conc,
		Timeout:      *reqTO,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gremlin-loadtest: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	start := time.Now()
	var done, failed int64

	worker := func(id, count int) {
		for i := 0; i < count; i++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			var t process.Traversal
			if m == modeRead {
				t = process.G.V().HasLabel(gson.Str(*label)).Count()
			} else {
				t = process.G.AddV(gson.Str(*label)).Property(gson.Str("seq"), gson.Int64(i))
			}
			if _, err := pool.Execute(t); err != nil {
				atomic.AddInt64(&failed, 1)
				time.Sleep(200 * time.Microsecond)
			}
			atomic.AddInt64(&done, 1)
		}
	}

	per := *n / *conc
	rem := *n - per**conc
	var wg sync.WaitGroup
	wg.Add(*conc)
	for w := 0; w < *conc; w++ {
		count := per
		if w == *conc-1 {
			count += rem
		}
		go func(id, count int) {
			defer wg.Done()
			worker(id, count)
		}(w, count)
	}
	wg.Wait()

	elapsed := time.Since(start)
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	ops := float64(*n) / elapsed.Seconds()
	fmt.Printf("LoadTest: mode=%s n=%d c=%d go=%d failed=%d Duration=%s Throughput=%.0f req/s\n",
		m, *n, *conc, runtime.GOMAXPROCS(0), atomic.LoadInt64(&failed), elapsed.Truncate(time.Millisecond), ops)
}
