package domain_test

import (
	"encoding/json"
	"houseprojects/domain"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Date", func() {
	Describe("ParseDate", func() {
		It("should parse calendar date", func() {
			d, err := domain.ParseDate("2026-10-19")
			Expect(err).To(BeNil())
			Expect(d).To(Equal(domain.DateOf(2026, 10, 19)))
		})

		It("should keep local calendar day of an instant", func() {
			instant := time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)
			d, err := domain.ParseDate(instant.Format(time.RFC3339))
			Expect(err).To(BeNil())
			Expect(d).To(Equal(domain.DateOf(2026, 10, 19)))
		})

		It("should reject garbage", func() {
			_, err := domain.ParseDate("tomorrow")
			Expect(err).To(MatchError("invalid date 'tomorrow', expect format 2006-01-02"))
		})
	})

	Describe("DaysSince", func() {
		It("should count calendar days across month and year borders", func() {
			Expect(domain.DateOf(2026, 11, 1).DaysSince(domain.DateOf(2026, 10, 31))).To(Equal(1))
			Expect(domain.DateOf(2027, 1, 1).DaysSince(domain.DateOf(2026, 12, 25))).To(Equal(7))
			Expect(domain.DateOf(2026, 10, 18).DaysSince(domain.DateOf(2026, 10, 20))).To(Equal(-2))
			Expect(domain.DateOf(2026, 3, 30).DaysSince(domain.DateOf(2026, 3, 28))).To(Equal(2))
		})
	})

	Describe("JSON", func() {
		It("should marshal as calendar date and null for zero", func() {
			b, err := json.Marshal(domain.DateOf(2026, 1, 2))
			Expect(err).To(BeNil())
			Expect(string(b)).To(Equal(`"2026-01-02"`))

			b, err = json.Marshal(domain.Date{})
			Expect(err).To(BeNil())
			Expect(string(b)).To(Equal(`null`))
		})

		It("should unmarshal date, empty string and null", func() {
			var holder struct {
				A domain.Date `json:"a"`
				B domain.Date `json:"b"`
				C domain.Date `json:"c"`
			}
			Expect(json.Unmarshal([]byte(`{"a": "2026-01-02", "b": "", "c": null}`), &holder)).To(BeNil())
			Expect(holder.A).To(Equal(domain.DateOf(2026, 1, 2)))
			Expect(holder.B.IsZero()).To(BeTrue())
			Expect(holder.C.IsZero()).To(BeTrue())

			Expect(json.Unmarshal([]byte(`{"a": "02/01/2026"}`), &holder)).ToNot(BeNil())
		})
	})
})
