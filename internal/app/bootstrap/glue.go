package bootstrap

import (
	"context"
	"errors"
	"time"

	campaignerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
	campaignports "madison/contexts/ad-delivery/campaign-service/ports"
	disterrors "madison/contexts/ad-delivery/distribution-service/domain/errors"
	distports "madison/contexts/ad-delivery/distribution-service/ports"
	tokenports "madison/contexts/ad-delivery/token-service/ports"
)

// Glue adapters between modules live here so the modules themselves never
// import each other. Each adapter translates one module's port vocabulary
// into another's, including error identity across the boundary.

// campaignDirectory projects the campaign registry into the distribution
// engine's read model.
type campaignDirectory struct {
	campaigns campaignports.CampaignRepository
}

func (d campaignDirectory) GetCampaign(ctx context.Context, campaignID uint64) (distports.CampaignView, error) {
	campaign, err := d.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, campaignerrors.ErrCampaignNotFound) {
			return distports.CampaignView{}, disterrors.ErrCampaignNotFound
		}
		return distports.CampaignView{}, err
	}
	return distports.CampaignView{
		CampaignID: campaign.CampaignID,
		Owner:      campaign.OwnerID,
		ContentRef: campaign.ContentRef,
		Active:     campaign.Active,
	}, nil
}

// tokenIssuer lets the distribution engine mint through the token ledger.
type tokenIssuer struct {
	ledger tokenports.LedgerRepository
}

func (t tokenIssuer) IssueTokens(ctx context.Context, campaignID uint64, owners []string, issuedAt time.Time) ([]distports.IssuedToken, error) {
	tokens, err := t.ledger.IssueTokens(ctx, campaignID, owners, issuedAt)
	if err != nil {
		return nil, err
	}
	issued := make([]distports.IssuedToken, 0, len(tokens))
	for _, token := range tokens {
		issued = append(issued, distports.IssuedToken{
			TokenID: token.TokenID,
			Owner:   token.Owner,
		})
	}
	return issued, nil
}

// campaignContentResolver resolves content references for token queries.
type campaignContentResolver struct {
	campaigns campaignports.CampaignRepository
}

func (c campaignContentResolver) ContentRef(ctx context.Context, campaignID uint64) (string, error) {
	campaign, err := c.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	return campaign.ContentRef, nil
}
