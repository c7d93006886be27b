package framer_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/teslamotors/ble-vehicle-core/pkg/ble/framer"
)

var _ = Describe("Fragment", func() {
	It("prefixes the message with a 2-byte big-endian length", func() {
		chunks := framer.Fragment([]byte("hi"), 20)
		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0]).To(Equal([]byte{0x00, 0x02, 'h', 'i'}))
	})

	It("splits long messages into chunkSize pieces", func() {
		msg := bytes.Repeat([]byte{0xAB}, 48)
		chunks := framer.Fragment(msg, 20)
		Expect(chunks).To(HaveLen(3)) // 50 bytes framed / 20 = 3 chunks (20, 20, 10)
		for _, c := range chunks {
			Expect(len(c)).To(BeNumerically("<=", 20))
		}
		var reassembled []byte
		for _, c := range chunks {
			reassembled = append(reassembled, c...)
		}
		Expect(reassembled[:2]).To(Equal([]byte{0x00, 0x30}))
		Expect(reassembled[2:]).To(Equal(msg))
	})

	It("defaults to DefaultChunkSize when given a non-positive size", func() {
		msg := bytes.Repeat([]byte{0x01}, 5)
		chunks := framer.Fragment(msg, 0)
		Expect(chunks).To(HaveLen(1))
	})
})

var _ = Describe("Reassembler", func() {
	var r framer.Reassembler

	BeforeEach(func() {
		r = framer.Reassembler{}
	})

	It("round-trips a fragmented message", func() {
		msg := bytes.Repeat([]byte{0x42}, 48)
		for _, chunk := range framer.Fragment(msg, 20) {
			r.Push(chunk)
		}
		got, ok, err := r.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(msg))

		_, ok, err = r.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(r.Len()).To(Equal(0))
	})

	It("waits for more data when the buffer is short", func() {
		r.Push([]byte{0x00, 0x05, 'h', 'i'})
		_, ok, err := r.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		r.Push([]byte{'!', 'x', 'x'})
		got, ok, err := r.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal([]byte("hi!xx")))
	})

	It("surfaces two frames that arrive back to back in one chunk", func() {
		first := framer.Fragment([]byte("aaaa"), 64)[0]
		second := framer.Fragment([]byte("bb"), 64)[0]
		r.Push(append(append([]byte(nil), first...), second...))

		got1, ok, err := r.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(got1).To(Equal([]byte("aaaa")))

		got2, ok, err := r.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(got2).To(Equal([]byte("bb")))
	})

	It("discards the buffer when the declared length overflows", func() {
		r.Push([]byte{0x04, 0x01}) // length = 0x0401 = 1025 > 1022 allowed payload
		_, ok, err := r.Next()
		Expect(err).To(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(r.Len()).To(Equal(0))
	})

	It("Reset discards any partial buffer", func() {
		r.Push([]byte{0x00, 0x05, 'h', 'i'})
		r.Reset()
		Expect(r.Len()).To(Equal(0))
	})
})
