package validator

import (
	"testing"

	"github.com/AnshNarg/bit-coin/model"

	"github.com/Oudwins/zog"
	"github.com/stretchr/testify/assert"
)

func validateOrder(req *model.OrderRequest) zog.ZogIssueMap {
	return zog.Struct(OrderShape).TestFunc(OrderSideTest).Validate(req)
}

func TestOrderShapeAcceptsValidOrder(t *testing.T) {
	issues := validateOrder(&model.OrderRequest{
		Symbol:   "bitcoin",
		Side:     model.SideBuy,
		Quantity: 1.5,
	})
	assert.Nil(t, issues)
}

func TestOrderShapeRejectsBadSide(t *testing.T) {
	issues := validateOrder(&model.OrderRequest{
		Symbol:   "bitcoin",
		Side:     "SHORT",
		Quantity: 1,
	})
	assert.NotNil(t, issues)
}

func TestOrderShapeRejectsNonPositiveQuantity(t *testing.T) {
	issues := validateOrder(&model.OrderRequest{
		Symbol:   "bitcoin",
		Side:     model.SideSell,
		Quantity: 0,
	})
	assert.NotNil(t, issues)
}

func TestLoginShapeRequiresEmail(t *testing.T) {
	bad := model.LoginRequest{Email: "not-an-email"}
	assert.NotNil(t, zog.Struct(LoginShape).Validate(&bad))

	good := model.LoginRequest{Email: "user@example.com"}
	assert.Nil(t, zog.Struct(LoginShape).Validate(&good))
}
