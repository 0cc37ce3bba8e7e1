package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"mazewalk/internal/core"
	"mazewalk/internal/maze"
)

type job struct {
	size core.Size
	seed int64
}

type result struct {
	job
	stats    maze.Stats
	distance int
	err      error
}

type summary struct {
	size     core.Size
	runs     int
	failures int
	open     int
	deadEnds int
	distance int
}

func main() {
	seeds := flag.Int("seeds", 200, "seeds to generate per size")
	first := flag.Int64("first-seed", 1, "first seed of the range")
	sizesFlag := flag.String("sizes", "21x21,40x30,41x31,5x5,3x3", "comma separated WxH grid sizes")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatalf("sizes: %v", err)
	}

	fmt.Printf("Sweeping %d sizes x %d seeds (%d workers)\n", len(sizes), *seeds, *workers)

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runJob(j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, size := range sizes {
			for s := int64(0); s < int64(*seeds); s++ {
				jobs <- job{size: size, seed: *first + s}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	bySize := map[core.Size]*summary{}
	for res := range results {
		sum, ok := bySize[res.size]
		if !ok {
			sum = &summary{size: res.size}
			bySize[res.size] = sum
		}
		sum.runs++
		if res.err != nil {
			sum.failures++
			fmt.Printf("FAIL %dx%d seed=%d: %v\n", res.size.W, res.size.H, res.seed, res.err)
			continue
		}
		sum.open += res.stats.Open
		sum.deadEnds += res.stats.DeadEnds
		sum.distance += res.distance
	}

	all := make([]*summary, 0, len(bySize))
	for _, sum := range bySize {
		all = append(all, sum)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].size.W != all[j].size.W {
			return all[i].size.W < all[j].size.W
		}
		return all[i].size.H < all[j].size.H
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	failed := 0
	for _, sum := range all {
		failed += sum.failures
		ok := sum.runs - sum.failures
		if ok == 0 {
			fmt.Printf("%5dx%-4d runs=%d failures=%d\n", sum.size.W, sum.size.H, sum.runs, sum.failures)
			continue
		}
		fmt.Printf("%5dx%-4d runs=%d failures=%d open=%.1f deadEnds=%.1f startGoalManhattan=%.1f\n",
			sum.size.W, sum.size.H, sum.runs, sum.failures,
			float64(sum.open)/float64(ok), float64(sum.deadEnds)/float64(ok), float64(sum.distance)/float64(ok))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runJob(j job) result {
	m := maze.New(j.size.W, j.size.H, core.NewRNG(j.seed))
	res := result{job: j, stats: maze.Analyze(m.Grid), err: m.Verify()}
	res.distance = abs(m.Goal.X-m.Start.X) + abs(m.Goal.Y-m.Start.Y)
	return res
}

func parseSizes(list string) ([]core.Size, error) {
	var sizes []core.Size
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, h, ok := strings.Cut(part, "x")
		if !ok {
			return nil, fmt.Errorf("%q: want WxH", part)
		}
		width, err := strconv.Atoi(w)
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("%q: bad width", part)
		}
		height, err := strconv.Atoi(h)
		if err != nil || height <= 0 {
			return nil, fmt.Errorf("%q: bad height", part)
		}
		sizes = append(sizes, core.Size{W: width, H: height})
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
