// Package match - the Frank–Wolfe descent of one restart.
//
// The relaxed objective over doubly-stochastic P is
//
//	f(P) = tr(A22ᵀ·P·B22·Pᵀ) + tr(Cᵀ·P)
//
// where A22/B22 are the free (unseeded) blocks and C is the constant
// gradient contribution of the seeded blocks (zero when unseeded; the
// whole matrices then play the role of the free blocks). Each iteration:
//
//	gradient  ∇f(P) = C + A22·P·B22ᵀ + A22ᵀ·P·B22
//	direction Q     = assignment oracle on (±∇f), a polytope vertex
//	step      α     = closed-form minimizer of the scalar quadratic
//	                  g(α) = f(α·P + (1−α)·Q), clamped to [0,1]
//	update    P     ← α·P + (1−α)·Q
//
// Termination: ‖P_new − P_old‖_F ≤ Eps, or MaxIter steps - whichever
// comes first. Hitting MaxIter is a normal, reportable path.
//
// All buffers are owned by the restart (arena-style reuse across its
// iterations) and never shared with concurrently running restarts.
//
// Complexity: O(MaxIter·n³) time, O(n²) space per restart.
package match

import "math"

// problem is the immutable per-call description shared by all restarts.
// All matrices are flat row-major; cons is nil for unseeded matching.
type problem struct {
	nf   int       // order of the free block
	a22  []float64 // nf×nf free block of A
	b22  []float64 // nf×nf free block of B
	cons []float64 // nf×nf constant gradient term from seeds, or nil
	obj  float64   // +1 minimize QAP cost, −1 maximize agreement
}

// fwScratch holds the buffers of a single restart's loop. One allocation
// per restart; iterations reuse them.
type fwScratch struct {
	p    []float64 // current iterate
	grad []float64 // gradient / projection cost
	r    []float64 // R = P − Q
	t1   []float64 // product scratch
	t2   []float64 // product scratch
}

func newFWScratch(nf int) *fwScratch {
	return &fwScratch{
		p:    make([]float64, nf*nf),
		grad: make([]float64, nf*nf),
		r:    make([]float64, nf*nf),
		t1:   make([]float64, nf*nf),
		t2:   make([]float64, nf*nf),
	}
}

// descend runs the Frank–Wolfe loop from the iterate already stored in
// sc.p and returns the projected free-block assignment together with the
// number of iterations performed.
func (pb *problem) descend(sc *fwScratch, eps float64, maxIter int) (perm []int, iters int) {
	n := pb.nf
	for iters = 0; iters < maxIter; {
		// ∇f(P) = cons + A22·P·B22ᵀ + A22ᵀ·P·B22.
		matMulTransB(sc.t1, sc.p, pb.b22, n)
		matMul(sc.grad, pb.a22, sc.t1, n)
		matMul(sc.t1, sc.p, pb.b22, n)
		matMulTransA(sc.t2, pb.a22, sc.t1, n)
		addIn(sc.grad, sc.t2)
		if pb.cons != nil {
			addIn(sc.grad, pb.cons)
		}

		// Direction: the polytope vertex minimizing the linearized
		// objective. The oracle minimizes, so flip the sign when the
		// outer objective maximizes.
		if pb.obj < 0 {
			negate(sc.grad)
		}
		qperm := solveLAP(n, sc.grad)

		// R = P − Q.
		copy(sc.r, sc.p)
		for i := 0; i < n; i++ {
			sc.r[i*n+qperm[i]]--
		}

		// g(α) = f(Q + α·R) = c + b·α + a·α² with
		//   a = tr(A22ᵀ·R·B22·Rᵀ)
		//   b = tr(A22ᵀ·R·B22·Qᵀ) + tr(A22ᵀ·Q·B22·Rᵀ) + tr(Cᵀ·R).
		matMul(sc.t1, sc.r, pb.b22, n) // t1 = R·B22
		matMulTransB(sc.t2, sc.t1, sc.r, n)
		qa := dotMat(pb.a22, sc.t2)

		var qb float64
		// tr(A22ᵀ·R·B22·Qᵀ): (t1·Qᵀ)[i,j] = t1[i, qperm[j]].
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				qb += pb.a22[i*n+j] * sc.t1[i*n+qperm[j]]
			}
		}
		// tr(A22ᵀ·Q·B22·Rᵀ): (Q·B22)[i,k] = B22[qperm[i],k].
		for i := 0; i < n; i++ {
			bi := qperm[i] * n
			for j := 0; j < n; j++ {
				var s float64
				for k := 0; k < n; k++ {
					s += pb.b22[bi+k] * sc.r[j*n+k]
				}
				qb += pb.a22[i*n+j] * s
			}
		}
		if pb.cons != nil {
			qb += dotMat(pb.cons, sc.r)
		}

		// Minimize obj·g over [0,1]: interior critical point when the
		// scaled quadratic is convex, otherwise the better endpoint.
		alpha := 0.0
		if crit := -qb / (2 * qa); pb.obj*qa > 0 && crit >= 0 && crit <= 1 {
			alpha = crit
		} else if pb.obj*(qa+qb) < 0 {
			alpha = 1
		}

		// P ← α·P + (1−α)·Q; the change is (1−α)·(Q−P) = −(1−α)·R.
		for i := 0; i < n; i++ {
			base := i * n
			for j := 0; j < n; j++ {
				sc.p[base+j] *= alpha
			}
			sc.p[base+qperm[i]] += 1 - alpha
		}
		iters++

		if (1-alpha)*frobNorm(sc.r) <= eps {
			break
		}
	}

	// Project: assignment on −P discretizes the relaxed iterate (larger
	// entries mean stronger correspondence, the oracle minimizes).
	for i := range sc.grad {
		sc.grad[i] = -sc.p[i]
	}

	return solveLAP(n, sc.grad), iters
}

// --- flat row-major n×n helpers (hot path, no allocations) ---

// matMul sets dst = a·b.
func matMul(dst, a, b []float64, n int) {
	for i := 0; i < n; i++ {
		ai := i * n
		for j := 0; j < n; j++ {
			dst[ai+j] = 0
		}
		for k := 0; k < n; k++ {
			aik := a[ai+k]
			if aik == 0 {
				continue
			}
			bk := k * n
			for j := 0; j < n; j++ {
				dst[ai+j] += aik * b[bk+j]
			}
		}
	}
}

// matMulTransB sets dst = a·bᵀ.
func matMulTransB(dst, a, b []float64, n int) {
	for i := 0; i < n; i++ {
		ai := i * n
		for j := 0; j < n; j++ {
			bj := j * n
			var s float64
			for k := 0; k < n; k++ {
				s += a[ai+k] * b[bj+k]
			}
			dst[ai+j] = s
		}
	}
}

// matMulTransA sets dst = aᵀ·b.
func matMulTransA(dst, a, b []float64, n int) {
	for i := 0; i < n*n; i++ {
		dst[i] = 0
	}
	for k := 0; k < n; k++ {
		ak := k * n
		bk := k * n
		for i := 0; i < n; i++ {
			aki := a[ak+i]
			if aki == 0 {
				continue
			}
			di := i * n
			for j := 0; j < n; j++ {
				dst[di+j] += aki * b[bk+j]
			}
		}
	}
}

// dotMat returns Σ a∘b, i.e. tr(aᵀ·b) for equally shaped flat matrices.
func dotMat(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// addIn sets dst += src elementwise.
func addIn(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// negate flips the sign of every entry.
func negate(m []float64) {
	for i := range m {
		m[i] = -m[i]
	}
}

// frobNorm returns the Frobenius norm of the flat matrix.
func frobNorm(m []float64) float64 {
	var s float64
	for _, v := range m {
		s += v * v
	}

	return math.Sqrt(s)
}
