package usecases_test

import (
	"context"
	"fmt"
	"time"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DashboardService", func() {
	It("should count records and list the five newest consignments", func() {
		store := newFakeStore()
		service := usecases.NewDashboardService(
			fakeConsignmentRepository{store},
			fakeTemplateRepository{store},
			fakeMeasurementRepository{store},
		)

		weight := seedTemplate(store, "weight")
		base := time.Now().Add(-time.Hour)
		for i := 0; i < 7; i++ {
			c := seedConsignment(store, fmt.Sprintf("C-%d", i))
			c.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			store.consignments[c.ID] = c
			seedMeasurement(store, c.ID, domain.ByTemplate{TemplateID: weight.ID}, "1kg")
		}

		dashboard, err := service.GetDashboard(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.ConsignmentCount).To(Equal(7))
		Expect(dashboard.FieldTemplateCount).To(Equal(1))
		Expect(dashboard.MeasurementCount).To(Equal(7))
		Expect(dashboard.RecentConsignments).To(HaveLen(5))
		Expect(dashboard.RecentConsignments[0].Name.String()).To(Equal("C-6"))
		Expect(dashboard.RecentConsignments[4].Name.String()).To(Equal("C-2"))
	})
})
