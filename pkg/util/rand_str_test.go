package util

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandStr_LengthAndCharset(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 8, 10, 32} {
		s := RandStr(n)
		require.Len(t, s, n)

		for _, r := range s {
			require.True(t, strings.ContainsRune(charset, r), s)
		}
	}
}

func TestRandStr_ConcurrentCallsStayUnique(t *testing.T) {
	t.Parallel()

	const goroutines = 64
	const perGoroutine = 32

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, goroutines*perGoroutine)
		wg   sync.WaitGroup
	)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			local := make([]string, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				local = append(local, RandStr(8))
			}

			mu.Lock()
			for _, s := range local {
				seen[s] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, goroutines*perGoroutine)
}
