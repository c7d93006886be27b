package authentication

import "github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/signatures"

// SealParams carries the command metadata a session commits to when sealing
// or opening an AES-GCM-personalized message: see metadata.go. Fields are
// added to the canonical TLV in tag order, so the zero value of an omitted
// field (an empty Domain, for instance) must never be sent as if present;
// callers set HasDomain accordingly.
type SealParams struct {
	HasDomain       bool
	Domain          byte
	Personalization []byte
	Epoch           []byte
	ExpiresAt       uint32
	Counter         uint32
	Flags           uint32
}

func (p SealParams) metadata() (*metadata, error) {
	meta := newMetadata()
	if err := meta.Add(signatures.Tag_TAG_SIGNATURE_TYPE, []byte{byte(signatures.SignatureType_SIGNATURE_TYPE_AES_GCM_PERSONALIZED)}); err != nil {
		return nil, err
	}
	if p.HasDomain {
		if err := meta.Add(signatures.Tag_TAG_DOMAIN, []byte{p.Domain}); err != nil {
			return nil, err
		}
	}
	if err := meta.Add(signatures.Tag_TAG_PERSONALIZATION, p.Personalization); err != nil {
		return nil, err
	}
	if err := meta.Add(signatures.Tag_TAG_EPOCH, p.Epoch); err != nil {
		return nil, err
	}
	if err := meta.AddUint32(signatures.Tag_TAG_EXPIRES_AT, p.ExpiresAt); err != nil {
		return nil, err
	}
	if err := meta.AddUint32(signatures.Tag_TAG_COUNTER, p.Counter); err != nil {
		return nil, err
	}
	if err := meta.AddUint32(signatures.Tag_TAG_FLAGS, p.Flags); err != nil {
		return nil, err
	}
	return meta, nil
}

// SealGCM encrypts plaintext under session using the AES-GCM-personalized
// scheme, committing to p in the associated data.
func SealGCM(session Session, p SealParams, plaintext []byte) (nonce, ciphertext, tag []byte, err error) {
	meta, err := p.metadata()
	if err != nil {
		return nil, nil, nil, err
	}
	return session.Encrypt(plaintext, meta.Checksum(nil))
}

// OpenGCM authenticates and decrypts an inbound AES-GCM-personalized
// message, given the signature fields the response carried in p.
func OpenGCM(session Session, p SealParams, nonce, ciphertext, tag []byte) ([]byte, error) {
	meta, err := p.metadata()
	if err != nil {
		return nil, err
	}
	return session.Decrypt(nonce, ciphertext, meta.Checksum(nil), tag)
}
