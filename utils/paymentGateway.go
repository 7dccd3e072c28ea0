package utils

import (
	"fmt"
	"lms/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// GatewayVerifyResponse represents the gateway's payment-status response
type GatewayVerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		OrderID   string  `json:"order_id"`
		PaymentID string  `json:"payment_id"`
		Amount    float64 `json:"amount"`
		State     string  `json:"state"` // CAPTURED, FAILED, REFUNDED
	} `json:"data"`
}

// VerifyGatewayPayment asks the payment gateway whether an order was
// captured. Any transport or gateway-side failure is returned to the
// caller; no enrollment may be created on an unverified payment.
func VerifyGatewayPayment(orderID, paymentID string) (*GatewayVerifyResponse, error) {
	client := resty.New().SetTimeout(15 * time.Second)

	var verifyResp GatewayVerifyResponse
	resp, err := client.R().
		SetHeader("X-App-Token", config.AppConfig.GatewayAppToken).
		SetHeader("X-App-Secret", config.AppConfig.GatewaySecret).
		SetQueryParam("order_id", orderID).
		SetQueryParam("payment_id", paymentID).
		SetResult(&verifyResp).
		Get(config.AppConfig.GatewayApiURL + "payments/verify")
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gateway error: %s", resp.String())
	}

	return &verifyResp, nil
}
