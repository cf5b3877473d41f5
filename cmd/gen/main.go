package main

import (
	"stampcard/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MerchantModel{},
		model.CustomerModel{},
		model.LoyaltyCardModel{},
		model.VisitModel{},
		model.RedemptionModel{},
		model.PointAdjustmentModel{},
		model.BannedNumberModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
