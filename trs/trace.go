package trs

// TraceResult is the tracer's decision (§4.6). The zero value has Kind
// Independent and equals IndependentResult(); inspect Kind before Index.
type TraceResult struct {
	Kind  TraceKind
	Index int
}

// TraceKind enumerates the tracer's possible decisions. Using named values
// here instead of magic sentinel integers closes the quirk in the source
// material, where "no intersection" and "linked" were encoded as -2 and -1
// respectively and easily confused with a real ring index.
type TraceKind int

const (
	// Independent means the two signatures were produced by different
	// signers: the pseudonym sets share no ring position.
	Independent TraceKind = iota
	// Linked means the two signatures were produced by the same signer on
	// the same message: the pseudonym sets agree at every ring position.
	Linked
	// Traced means the two signatures were produced by the same signer on
	// different messages; Index names that signer's ring position.
	Traced
)

// TracedTo returns a TraceResult identifying the signer's ring index.
func TracedTo(index int) TraceResult { return TraceResult{Kind: Traced, Index: index} }

// IndependentResult returns the "different signers" TraceResult.
func IndependentResult() TraceResult { return TraceResult{Kind: Independent} }

// LinkedResult returns the "same signer, same message" TraceResult.
func LinkedResult() TraceResult { return TraceResult{Kind: Linked} }

// AnomalyHook is invoked when the tracer observes an intersection size
// strictly between 1 and N — cryptographically impossible for two
// well-formed signatures sharing a tag, per §4.6. The tracer still returns
// Independent in this case; the hook exists so callers can surface the
// anomaly to an observability path rather than have it silently folded
// away (§7).
type AnomalyHook func(tag Tag, msg1, msg2 []byte, intersection []int)

// Trace compares two signatures verified under the same tag on messages
// msg1, msg2, and decides whether they were produced by the same signer
// (§4.6). hook may be nil; when non-nil, it is called on the anomalous
// 1 < |S| < N case before Trace returns Independent.
func Trace(tag Tag, msg1 []byte, sig1 *Signature, msg2 []byte, sig2 *Signature, hook AnomalyHook) TraceResult {
	n := tag.N()

	a0_1 := tag.a0(msg1)
	a0_2 := tag.a0(msg2)

	sigmas1 := allSigmas(a0_1, sig1.A1, n)
	sigmas2 := allSigmas(a0_2, sig2.A1, n)

	var intersection []int
	for i := 0; i < n; i++ {
		if sigmas1[i].Equal(sigmas2[i]) {
			intersection = append(intersection, i)
		}
	}

	switch len(intersection) {
	case n:
		return LinkedResult()
	case 1:
		return TracedTo(intersection[0])
	case 0:
		return IndependentResult()
	default:
		if hook != nil {
			hook(tag, msg1, msg2, intersection)
		}
		return IndependentResult()
	}
}
