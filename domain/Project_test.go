package domain_test

import (
	"houseprojects/domain"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Project", func() {
	It("should clamp progress into [0, 100]", func() {
		Expect(domain.ClampProgress(150)).To(Equal(100))
		Expect(domain.ClampProgress(-5)).To(Equal(0))
		Expect(domain.ClampProgress(42)).To(Equal(42))
	})

	It("should rank priorities with high first", func() {
		Expect(domain.PriorityHigh.Rank()).To(BeNumerically("<", domain.PriorityMedium.Rank()))
		Expect(domain.PriorityMedium.Rank()).To(BeNumerically("<", domain.PriorityLow.Rank()))
		Expect(domain.Priority("").Rank()).To(Equal(domain.PriorityMedium.Rank()))
		Expect(domain.Priority("").OrDefault()).To(Equal(domain.PriorityMedium))
	})

	It("should display group with optional subgroup", func() {
		p := domain.Project{Group: "Garden"}
		Expect(p.GroupDisplay()).To(Equal("Garden"))
		p.Subgroup = domain.OptionalString("Lawn")
		Expect(p.GroupDisplay()).To(Equal("Garden / Lawn"))
		Expect(domain.OptionalString("  ")).To(BeNil())
	})

	It("should resolve assignee names", func() {
		names := []domain.Name{{ID: 1, Name: "Alice"}}
		Expect(domain.LookupName(names, 1)).To(Equal("Alice"))
		Expect(domain.LookupName(names, 2)).To(Equal(domain.UnknownName))
	})

	It("should validate creation payload", func() {
		due := domain.DateOf(2026, 10, 19)
		Expect(domain.Validate(&domain.ProjectCreation{Description: "Mow lawn", Group: "Garden", NameID: 1, DueDate: &due})).To(BeNil())
		Expect(domain.Validate(&domain.ProjectCreation{Group: "Garden", NameID: 1, DueDate: &due})).ToNot(BeNil())
		Expect(domain.Validate(&domain.ProjectCreation{Description: "Mow lawn", Group: "Garden", NameID: 1})).ToNot(BeNil())
		Expect(domain.Validate(&domain.ProjectCreation{Description: "Mow lawn", Group: "Garden", NameID: 1, DueDate: &due,
			Priority: "urgent"})).ToNot(BeNil())
	})
})
