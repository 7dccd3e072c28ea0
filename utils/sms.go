package utils

import (
	"fmt"
	"lms/config"
	"log"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"
)

// GenerateVerificationCode generates a 6-digit SMS code
func GenerateVerificationCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := ""
	for i := 0; i < 6; i++ {
		code += fmt.Sprintf("%d", rng.Intn(10))
	}
	return code
}

// SendCodeToMobile delivers a verification code through the configured
// SMS provider. Validity window is 10 minutes.
func SendCodeToMobile(mobile, code string) error {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization":    config.AppConfig.SmsApiKey,
			"route":            "dlt",
			"sender_id":        config.AppConfig.SmsSenderID,
			"variables_values": fmt.Sprintf("%s|10", code),
			"flash":            "0",
			"numbers":          mobile,
		}).
		Get(config.AppConfig.SmsApiUrl)
	if err != nil {
		log.Printf("Error while sending SMS code: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send SMS code, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send SMS code, code: %d", resp.StatusCode())
	}

	log.Println("SMS code sent successfully to", mobile)
	return nil
}
