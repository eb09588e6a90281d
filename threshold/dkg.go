package threshold

import (
	"fmt"
	"io"

	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/group"
)

// Round1Data is broadcast by each participant in round 1.
type Round1Data struct {
	ID          int           // participant identifier
	Commitments []group.Point // commitments to polynomial coefficients
}

// Round1PrivateData is sent privately to each participant.
type Round1PrivateData struct {
	FromID int          // sender's ID
	ToID   int          // recipient's ID
	Share  group.Scalar // polynomial evaluation for recipient
}

// Participant holds state during DKG.
type Participant struct {
	id             int
	coefficients   []group.Scalar       // our secret polynomial
	commitments    []group.Point        // public commitments
	receivedShares map[int]group.Scalar // shares from others
}

// ID returns the participant identifier.
func (p *Participant) ID() int {
	return p.id
}

// NewParticipant creates a participant for DKG.
func (th *Threshold) NewParticipant(r io.Reader, id int) (*Participant, error) {
	if !th.validID(id) {
		return nil, fmt.Errorf("participant ID must be between 1 and %d, got %d", th.total, id)
	}
	g := th.group()

	// Generate random polynomial of degree t-1
	coeffs := make([]group.Scalar, th.threshold)
	for i := range coeffs {
		c, err := g.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	// Compute commitments: C_i = coeffs[i] * G
	commits := make([]group.Point, th.threshold)
	for i, c := range coeffs {
		commits[i] = g.NewPoint().ScalarMult(c, g.Generator())
	}

	return &Participant{
		id:             id,
		coefficients:   coeffs,
		commitments:    commits,
		receivedShares: make(map[int]group.Scalar),
	}, nil
}

// Round1Broadcast returns data to broadcast to all participants.
func (p *Participant) Round1Broadcast() *Round1Data {
	return &Round1Data{
		ID:          p.id,
		Commitments: p.commitments,
	}
}

// Round1PrivateSend returns the share to send privately to recipient.
// recipientID must be a participant ID other than p's own; evaluating at
// zero would reveal p's secret contribution.
func (th *Threshold) Round1PrivateSend(p *Participant, recipientID int) (*Round1PrivateData, error) {
	if !th.validID(recipientID) || recipientID == p.id {
		return nil, fmt.Errorf("%w: recipient %d", ErrInvalidShare, recipientID)
	}
	share := th.evalPolynomial(p.coefficients, th.scalarFromInt(recipientID))

	return &Round1PrivateData{
		FromID: p.id,
		ToID:   recipientID,
		Share:  share,
	}, nil
}

// Round2ReceiveShare verifies and stores a received share.
func (th *Threshold) Round2ReceiveShare(p *Participant, data *Round1PrivateData, senderCommitments []group.Point) error {
	if data.ToID != p.id {
		return fmt.Errorf("%w: share addressed to %d", ErrInvalidShare, data.ToID)
	}
	if !th.validID(data.FromID) || data.FromID == p.id {
		return fmt.Errorf("%w: sender %d", ErrInvalidShare, data.FromID)
	}
	if len(senderCommitments) != th.threshold {
		return fmt.Errorf("%w: %d commitments, want %d", ErrInvalidShare, len(senderCommitments), th.threshold)
	}

	// Verify: share * G == sum(commitments[i] * recipientID^i)
	g := th.group()
	lhs := g.NewPoint().ScalarMult(data.Share, g.Generator())
	rhs := th.evalCommitments(senderCommitments, th.scalarFromInt(data.ToID))
	if !lhs.Equal(rhs) {
		return fmt.Errorf("%w %d", ErrInvalidShare, data.FromID)
	}

	p.receivedShares[data.FromID] = data.Share
	return nil
}

// Finalize computes the final key share after receiving all shares.
// allBroadcasts must contain the round 1 data of every participant,
// including p.
func (th *Threshold) Finalize(p *Participant, allBroadcasts []*Round1Data) (*KeyShare, error) {
	if len(allBroadcasts) != th.total {
		return nil, fmt.Errorf("threshold: got %d broadcasts, want %d", len(allBroadcasts), th.total)
	}
	if len(p.receivedShares) != th.total-1 {
		return nil, fmt.Errorf("threshold: received %d shares, want %d", len(p.receivedShares), th.total-1)
	}
	seen := make(map[int]bool, th.total)
	for i, b := range allBroadcasts {
		if b == nil || !th.validID(b.ID) || seen[b.ID] || len(b.Commitments) != th.threshold {
			return nil, fmt.Errorf("threshold: broadcast %d is invalid or duplicated", i)
		}
		seen[b.ID] = true
		if b.ID == p.id {
			continue
		}
		if _, ok := p.receivedShares[b.ID]; !ok {
			return nil, fmt.Errorf("threshold: no share received from %d", b.ID)
		}
	}
	g := th.group()

	// Sum all received shares (including our own)
	secret := th.evalPolynomial(p.coefficients, th.scalarFromInt(p.id))
	for _, share := range p.receivedShares {
		secret = g.NewScalar().Add(secret, share)
	}

	// Compute group public key: sum of all constant term commitments
	groupKey := g.NewPoint()
	for _, broadcast := range allBroadcasts {
		groupKey = g.NewPoint().Add(groupKey, broadcast.Commitments[0])
	}

	sk, err := th.scheme.SecretKeyFromScalar(secret)
	if err != nil {
		return nil, fmt.Errorf("key share: %w", err)
	}

	// Polynomial coefficients are no longer needed
	for _, c := range p.coefficients {
		c.SetUint64(0)
	}

	return &KeyShare{
		ID:       p.id,
		Secret:   sk,
		GroupKey: th.scheme.PublicKeyFromPoint(groupKey),
	}, nil
}

func (th *Threshold) validID(id int) bool {
	return id >= 1 && id <= th.total
}

// VerificationKey computes participant id's public key share x_id*G from
// the round 1 broadcasts alone, so that anyone can check its decryption
// shares.
func (th *Threshold) VerificationKey(id int, allBroadcasts []*Round1Data) *elgamal.PublicKey {
	g := th.group()
	x := th.scalarFromInt(id)
	acc := g.NewPoint()
	for _, b := range allBroadcasts {
		acc = g.NewPoint().Add(acc, th.evalCommitments(b.Commitments, x))
	}
	return th.scheme.PublicKeyFromPoint(acc)
}
