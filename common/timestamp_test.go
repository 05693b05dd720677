package common_test

import (
	"houseprojects/common"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Timestamp", func() {
	Describe("TimestampOf", func() {
		It("should keep the instant with microsecond precision", func() {
			t := time.Date(2021, 5, 6, 12, 30, 40, 666666666, time.UTC)
			ts := common.TimestampOf(t)
			Expect(ts.Time().Equal(time.Date(2021, 5, 6, 12, 30, 40, 666667000, time.UTC))).To(BeTrue())
		})

		It("should map zero time to zero timestamp", func() {
			ts := common.TimestampOf(time.Time{})
			Expect(ts.Time().IsZero()).To(BeTrue())

			jsonBytes, err := ts.MarshalJSON()
			Expect(err).To(BeNil())
			Expect(string(jsonBytes)).To(Equal(`null`))
		})
	})
})
