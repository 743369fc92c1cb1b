package utils

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var parallelDegree atomic.Int64

// SetParallelDegree sets the number of goroutines used by ParallelFor. Zero or
// a negative value selects runtime.NumCPU().
func SetParallelDegree(NP int) {
	parallelDegree.Store(int64(NP))
}

func ParallelDegree() (NP int) {
	if NP = int(parallelDegree.Load()); NP <= 0 {
		NP = runtime.NumCPU()
	}
	return
}

// ParallelFor calls fn(k) for every k in [0,K). The range is split into
// contiguous buckets, one goroutine per bucket. fn must only write state owned
// by index k.
func ParallelFor(K int, fn func(k int)) {
	if K <= 0 {
		return
	}
	NP := ParallelDegree()
	if NP > K {
		NP = K
	}
	if NP == 1 {
		for k := 0; k < K; k++ {
			fn(k)
		}
		return
	}
	pm := NewPartitionMap(NP, K)
	log.Debug("parallel for", "K", K, "buckets", NP,
		"largest", pm.GetBucketDimension(0), "smallest", pm.GetBucketDimension(NP-1))
	var wg sync.WaitGroup
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				fn(k)
			}
		}(np)
	}
	wg.Wait()
}

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// GetBucketDimension is the number of indices owned by bucket bn.
func (pm *PartitionMap) GetBucketDimension(bn int) (size int) {
	kMin, kMax := pm.GetBucketRange(bn)
	return kMax - kMin
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into c.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}
