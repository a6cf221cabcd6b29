// Command ringsigctl is a thin, unstable driver over the clsag and trs
// packages for manual experimentation: it accepts hex-encoded rings,
// tags, keys, and messages on the command line and prints hex-encoded
// signatures, verification results, or trace decisions. It carries none
// of the library's API stability guarantees.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"threshold.network/ringsig/clsag"
	"threshold.network/ringsig/group"
	"threshold.network/ringsig/ringkeys"
	"threshold.network/ringsig/trs"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "clsag-keygen":
		err = runCLSAGKeygen(os.Args[2:])
	case "clsag-sign":
		err = runCLSAGSign(os.Args[2:])
	case "clsag-verify":
		err = runCLSAGVerify(os.Args[2:])
	case "trs-sign":
		err = runTRSSign(os.Args[2:])
	case "trs-verify":
		err = runTRSVerify(os.Args[2:])
	case "trs-trace":
		err = runTRSTrace(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "ringsigctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ringsigctl <clsag-keygen|clsag-sign|clsag-verify|trs-sign|trs-verify|trs-trace> [flags]")
}

func runCLSAGKeygen(args []string) error {
	fs := flag.NewFlagSet("clsag-keygen", flag.ExitOnError)
	fs.Parse(args)

	s, err := group.RandomScalar(rand.Reader)
	if err != nil {
		return err
	}
	pub := group.ScalarBaseMult(s)

	fmt.Printf("private %s\n", hex.EncodeToString(s.Bytes()))
	fmt.Printf("public  %s\n", hex.EncodeToString(pub.Bytes()))
	return nil
}

// runCLSAGSign signs a message under a ring given as comma-separated
// per-row hex keys, one --row flag per ring position (each a
// comma-separated list of K compressed hex pubkeys), with --index
// naming the signer's row and --secrets a comma-separated list of K hex
// scalars for that row.
func runCLSAGSign(args []string) error {
	fs := flag.NewFlagSet("clsag-sign", flag.ExitOnError)
	var rows multiFlag
	fs.Var(&rows, "row", "comma-separated hex pubkeys for one ring row (repeatable)")
	index := fs.Int("index", -1, "signer row index")
	secretsHex := fs.String("secrets", "", "comma-separated hex secret scalars for the signer row")
	msgHex := fs.String("msg", "", "hex-encoded message")
	fs.Parse(args)

	raw, err := decodeRows(rows)
	if err != nil {
		return err
	}
	ring, err := clsag.DecodeRing(raw)
	if err != nil {
		return err
	}

	secrets, err := decodeScalars(*secretsHex)
	if err != nil {
		return err
	}
	msg, err := hex.DecodeString(*msgHex)
	if err != nil {
		return fmt.Errorf("decoding msg: %w", err)
	}

	sig, err := clsag.Sign(rand.Reader, ring, *index, secrets, msg)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(sig.Bytes()))
	return nil
}

func runCLSAGVerify(args []string) error {
	fs := flag.NewFlagSet("clsag-verify", flag.ExitOnError)
	var rows multiFlag
	fs.Var(&rows, "row", "comma-separated hex pubkeys for one ring row (repeatable)")
	msgHex := fs.String("msg", "", "hex-encoded message")
	optimized := fs.Bool("optimized", false, "use the multi-scalar-multiplication verifier")
	fs.Parse(args)

	sigHex := fs.Arg(0)
	if sigHex == "" {
		return fmt.Errorf("missing signature argument")
	}

	raw, err := decodeRows(rows)
	if err != nil {
		return err
	}
	ring, err := clsag.DecodeRing(raw)
	if err != nil {
		return err
	}

	sig, err := decodeCLSAGSignature(sigHex, ring.N(), ring.K())
	if err != nil {
		return err
	}
	msg, err := hex.DecodeString(*msgHex)
	if err != nil {
		return fmt.Errorf("decoding msg: %w", err)
	}

	if *optimized {
		err = clsag.OptimizedVerify(ring, sig, msg)
	} else {
		err = clsag.Verify(ring, sig, msg)
	}
	if err != nil {
		fmt.Println("invalid:", err)
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}

func decodeRows(rows []string) ([][][]byte, error) {
	raw := make([][][]byte, len(rows))
	for i, row := range rows {
		fields := strings.Split(row, ",")
		decodedRow := make([][]byte, len(fields))
		for j, f := range fields {
			b, err := hex.DecodeString(f)
			if err != nil {
				return nil, fmt.Errorf("decoding row %d key %d: %w", i, j, err)
			}
			decodedRow[j] = b
		}
		raw[i] = decodedRow
	}
	return raw, nil
}

func decodeScalars(csv string) ([]group.Scalar, error) {
	fields := strings.Split(csv, ",")
	out := make([]group.Scalar, len(fields))
	for i, f := range fields {
		b, err := hex.DecodeString(f)
		if err != nil {
			return nil, fmt.Errorf("decoding secret %d: %w", i, err)
		}
		s, err := group.ScalarFromCanonicalBytes(b)
		if err != nil {
			return nil, fmt.Errorf("secret %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

func decodeCLSAGSignature(s string, n, k int) (*clsag.Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding signature: %w", err)
	}

	want := group.ScalarLen + group.ScalarLen*n + group.PointLen*k
	if len(b) != want {
		return nil, fmt.Errorf("signature must be %d bytes for N=%d K=%d, got %d", want, n, k, len(b))
	}

	off := 0
	challenge, err := group.ScalarFromCanonicalBytes(b[off : off+group.ScalarLen])
	if err != nil {
		return nil, fmt.Errorf("decoding challenge: %w", err)
	}
	off += group.ScalarLen

	responses := make([]group.Scalar, n)
	for i := range responses {
		responses[i], err = group.ScalarFromCanonicalBytes(b[off : off+group.ScalarLen])
		if err != nil {
			return nil, fmt.Errorf("decoding response %d: %w", i, err)
		}
		off += group.ScalarLen
	}

	keyImages := make([]group.Point, k)
	for i := range keyImages {
		keyImages[i], err = group.PointFromCompressedBytes(b[off : off+group.PointLen])
		if err != nil {
			return nil, fmt.Errorf("%w: decoding key image %d: %v", clsag.ErrBadKeyImages, i, err)
		}
		off += group.PointLen
	}

	return &clsag.Signature{Challenge: challenge, Responses: responses, KeyImages: keyImages}, nil
}

// runTRSSign signs a message under a tag given as comma-separated hex
// pubkeys and a hex issue label, using the signer's 64-byte hex private key.
func runTRSSign(args []string) error {
	fs := flag.NewFlagSet("trs-sign", flag.ExitOnError)
	pubkeysHex := fs.String("pubkeys", "", "comma-separated hex public keys")
	issueHex := fs.String("issue", "", "hex-encoded issue label")
	privHex := fs.String("priv", "", "64-byte hex private key")
	msgHex := fs.String("msg", "", "hex-encoded message")
	fs.Parse(args)

	tag, err := decodeTag(*pubkeysHex, *issueHex)
	if err != nil {
		return err
	}
	priv, err := decodePrivateKey(*privHex)
	if err != nil {
		return err
	}
	msg, err := hex.DecodeString(*msgHex)
	if err != nil {
		return fmt.Errorf("decoding msg: %w", err)
	}

	sig, err := trs.Sign(rand.Reader, tag, msg, priv)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(sig.Bytes()))
	return nil
}

func runTRSVerify(args []string) error {
	fs := flag.NewFlagSet("trs-verify", flag.ExitOnError)
	pubkeysHex := fs.String("pubkeys", "", "comma-separated hex public keys")
	issueHex := fs.String("issue", "", "hex-encoded issue label")
	msgHex := fs.String("msg", "", "hex-encoded message")
	fs.Parse(args)

	sigHex := fs.Arg(0)
	if sigHex == "" {
		return fmt.Errorf("missing signature argument")
	}

	tag, err := decodeTag(*pubkeysHex, *issueHex)
	if err != nil {
		return err
	}
	sig, err := decodeTRSSignature(sigHex, tag.N())
	if err != nil {
		return err
	}
	msg, err := hex.DecodeString(*msgHex)
	if err != nil {
		return fmt.Errorf("decoding msg: %w", err)
	}

	if err := trs.Verify(tag, msg, sig); err != nil {
		fmt.Println("invalid:", err)
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}

// runTRSTrace compares two verified signatures under the same tag and
// prints one of "linked", "independent", or "traced <index>" (§4.6).
func runTRSTrace(args []string) error {
	fs := flag.NewFlagSet("trs-trace", flag.ExitOnError)
	pubkeysHex := fs.String("pubkeys", "", "comma-separated hex public keys")
	issueHex := fs.String("issue", "", "hex-encoded issue label")
	msg1Hex := fs.String("msg1", "", "hex-encoded first message")
	msg2Hex := fs.String("msg2", "", "hex-encoded second message")
	sig1Hex := fs.String("sig1", "", "hex-encoded first signature")
	sig2Hex := fs.String("sig2", "", "hex-encoded second signature")
	fs.Parse(args)

	tag, err := decodeTag(*pubkeysHex, *issueHex)
	if err != nil {
		return err
	}
	sig1, err := decodeTRSSignature(*sig1Hex, tag.N())
	if err != nil {
		return fmt.Errorf("sig1: %w", err)
	}
	sig2, err := decodeTRSSignature(*sig2Hex, tag.N())
	if err != nil {
		return fmt.Errorf("sig2: %w", err)
	}
	msg1, err := hex.DecodeString(*msg1Hex)
	if err != nil {
		return fmt.Errorf("decoding msg1: %w", err)
	}
	msg2, err := hex.DecodeString(*msg2Hex)
	if err != nil {
		return fmt.Errorf("decoding msg2: %w", err)
	}

	result := trs.Trace(tag, msg1, sig1, msg2, sig2, func(trs.Tag, []byte, []byte, []int) {
		fmt.Fprintln(os.Stderr, "ringsigctl: anomalous partial pseudonym intersection observed")
	})
	switch result.Kind {
	case trs.Linked:
		fmt.Println("linked")
	case trs.Independent:
		fmt.Println("independent")
	case trs.Traced:
		fmt.Println("traced", result.Index)
	}
	return nil
}

func decodeTag(pubkeysHex, issueHex string) (trs.Tag, error) {
	fields := strings.Split(pubkeysHex, ",")
	pubs := make([]ringkeys.PublicKey, len(fields))
	for i, f := range fields {
		b, err := hex.DecodeString(f)
		if err != nil {
			return trs.Tag{}, fmt.Errorf("decoding pubkey %d: %w", i, err)
		}
		pub, err := ringkeys.PublicKeyFromBytes(b)
		if err != nil {
			return trs.Tag{}, fmt.Errorf("pubkey %d: %w", i, err)
		}
		pubs[i] = pub
	}
	issue, err := hex.DecodeString(issueHex)
	if err != nil {
		return trs.Tag{}, fmt.Errorf("decoding issue: %w", err)
	}
	return trs.Tag{Pubkeys: pubs, Issue: issue}, nil
}

func decodePrivateKey(s string) (ringkeys.PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ringkeys.PrivateKey{}, fmt.Errorf("decoding private key: %w", err)
	}
	return ringkeys.PrivateKeyFromBytes(b)
}

func decodeTRSSignature(s string, n int) (*trs.Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding signature: %w", err)
	}

	want := group.PointLen + 2*group.ScalarLen*n
	if len(b) != want {
		return nil, fmt.Errorf("signature must be %d bytes for N=%d, got %d", want, n, len(b))
	}

	off := 0
	a1, err := group.PointFromCompressedBytes(b[off : off+group.PointLen])
	if err != nil {
		return nil, fmt.Errorf("decoding A1: %w", err)
	}
	off += group.PointLen

	c := make([]group.Scalar, n)
	for i := range c {
		c[i], err = group.ScalarFromCanonicalBytes(b[off : off+group.ScalarLen])
		if err != nil {
			return nil, fmt.Errorf("decoding c[%d]: %w", i, err)
		}
		off += group.ScalarLen
	}

	z := make([]group.Scalar, n)
	for i := range z {
		z[i], err = group.ScalarFromCanonicalBytes(b[off : off+group.ScalarLen])
		if err != nil {
			return nil, fmt.Errorf("decoding z[%d]: %w", i, err)
		}
		off += group.ScalarLen
	}

	return &trs.Signature{A1: a1, C: c, Z: z}, nil
}

type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ";") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
