package validator

import (
	"github.com/AnshNarg/bit-coin/model"

	"github.com/Oudwins/zog"
)

var LoginShape = zog.Shape{
	"Email": zog.String().Email().Required(),
}

var OrderShape = zog.Shape{
	"Symbol":   zog.String().Required(),
	"Quantity": zog.Float64().Required().GT(0),
}

// OrderSideTest rejects any side other than BUY/SELL. Side is a typed
// string, so it is checked here instead of through a string schema.
func OrderSideTest(dataPtr any, ctx zog.Ctx) bool {
	order, ok := dataPtr.(*model.OrderRequest)
	if !ok {
		return true
	}

	if order.Side != model.SideBuy && order.Side != model.SideSell {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "side",
			Message: "Side must be BUY or SELL",
		})
		return false
	}
	return true
}
