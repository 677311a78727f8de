package usecase

import (
	"fmt"

	"LendRisk/internal/domain/models"
)

// promptTemplate embeds the BTC display amount. The reply contract mirrors
// models.VolatilityPrediction field for field.
const promptTemplate = `You are a Bitcoin lending risk analyst. A borrower wants to pledge %s BTC as collateral for a USD loan.

Assess the current volatility risk of this position. Keep in mind that Bitcoin routinely moves 5-10%% in a day, that larger positions take longer to liquidate in a falling market, and that the loan-to-value ratio must leave room for a sudden drawdown before liquidation can complete.

Reply with ONLY a JSON object, no markdown fences and no commentary, in exactly this shape:
{"isRisky": <boolean>, "maxLTV": <number between 40 and 70>, "reason": "<one short sentence>", "volatilityScore": <number between 1 and 100>, "confidenceLevel": <number between 1 and 100>}`

func renderPrompt(amountSats float64) string {
	return fmt.Sprintf(promptTemplate, models.BTCFromSatoshis(amountSats))
}
