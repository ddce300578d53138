package sql_test

import (
	"context"
	"errors"
	"time"

	"consignment-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type testParent struct {
	ID       string      `gorm:"primaryKey"`
	Name     string      `gorm:"uniqueIndex;not null"`
	Children []testChild `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

type testChild struct {
	ID       string `gorm:"primaryKey"`
	ParentID string `gorm:"not null"`
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		db, err := sql.NewMemoryORM(sql.Options{LogLevel: "silent"})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		orm = db
		ctx = context.Background()

		gomega.Expect(orm.AutoMigrate(&testParent{}, &testChild{})).To(gomega.Succeed())
	})

	ginkgo.Context("Error translation", func() {
		ginkgo.It("should report missing rows as ErrRecordNotFound", func() {
			var parent testParent
			err := orm.WithContext(ctx).First(&parent, "id = ?", "missing").Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
		})

		ginkgo.It("should report unique violations as ErrDuplicatedKey", func() {
			err := orm.WithContext(ctx).Create(&testParent{ID: "1", Name: "weight"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = orm.WithContext(ctx).Create(&testParent{ID: "2", Name: "weight"}).Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrDuplicatedKey))
		})

		ginkgo.It("should enforce foreign keys", func() {
			err := orm.WithContext(ctx).Create(&testChild{ID: "c1", ParentID: "nobody"}).Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrForeignKeyViolation))
		})
	})

	ginkgo.Context("Isolation", func() {
		ginkgo.It("should give each memory ORM its own database", func() {
			gomega.Expect(orm.WithContext(ctx).Create(&testParent{ID: "1", Name: "weight"}).Error()).To(gomega.Succeed())

			other, err := sql.NewMemoryORM(sql.Options{LogLevel: "silent"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other.AutoMigrate(&testParent{}, &testChild{})).To(gomega.Succeed())

			var count int64
			gomega.Expect(other.WithContext(ctx).Model(&testParent{}).Count(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.BeZero())
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.It("should roll back every statement when the callback fails", func() {
			err := orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
				if err := tx.Create(&testParent{ID: "1", Name: "weight"}).Error(); err != nil {
					return err
				}
				return errors.New("abort")
			})
			gomega.Expect(err).To(gomega.MatchError("abort"))

			var count int64
			gomega.Expect(orm.WithContext(ctx).Model(&testParent{}).Count(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.BeZero())
		})

		ginkgo.It("should cascade deletes to children", func() {
			gomega.Expect(orm.WithContext(ctx).Create(&testParent{ID: "1", Name: "weight"}).Error()).To(gomega.Succeed())
			gomega.Expect(orm.WithContext(ctx).Create(&testChild{ID: "c1", ParentID: "1"}).Error()).To(gomega.Succeed())

			gomega.Expect(orm.WithContext(ctx).Delete(&testParent{}, "id = ?", "1").Error()).To(gomega.Succeed())

			var count int64
			gomega.Expect(orm.WithContext(ctx).Model(&testChild{}).Count(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.BeZero())
		})
	})

	ginkgo.Context("WithContext", func() {
		ginkgo.It("should honour the configured query timeout", func() {
			db, err := sql.NewMemoryORM(sql.Options{LogLevel: "silent", QueryTimeout: 2 * time.Second})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(db.AutoMigrate(&testParent{})).To(gomega.Succeed())

			var count int64
			err = db.WithContext(ctx).Model(&testParent{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})

		ginkgo.It("should answer pings", func() {
			db, err := sql.NewMemoryORM(sql.Options{LogLevel: "silent"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(db.Ping(ctx)).To(gomega.Succeed())
		})
	})
})
