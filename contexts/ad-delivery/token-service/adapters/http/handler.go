package httpadapter

import (
	"context"
	"log/slog"

	"madison/contexts/ad-delivery/token-service/application/commands"
	"madison/contexts/ad-delivery/token-service/application/queries"
	"madison/contexts/ad-delivery/token-service/domain/entities"
	httptransport "madison/contexts/ad-delivery/token-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	TransferToken commands.TransferTokenUseCase
	GetToken      queries.GetTokenUseCase
	OwnerOf       queries.OwnerOfUseCase
	BalanceOf     queries.BalanceOfUseCase
	ContentRefOf  queries.ContentRefOfUseCase
	ListTokens    queries.ListTokensUseCase
	Logger        *slog.Logger
}

// TransferTokenHandler always surfaces the transferability error for known
// tokens; the non-nil error return is the contract.
func (h Handler) TransferTokenHandler(
	ctx context.Context,
	callerID string,
	tokenID uint64,
	req httptransport.TransferTokenRequest,
) error {
	return h.TransferToken.Execute(ctx, commands.TransferTokenCommand{
		CallerID: callerID,
		TokenID:  tokenID,
		ToID:     req.To,
	})
}

func (h Handler) GetTokenHandler(ctx context.Context, tokenID uint64) (httptransport.GetTokenResponse, error) {
	token, err := h.GetToken.Execute(ctx, tokenID)
	if err != nil {
		return httptransport.GetTokenResponse{}, err
	}
	return httptransport.GetTokenResponse{Token: tokenDTO(token)}, nil
}

func (h Handler) OwnerOfHandler(ctx context.Context, tokenID uint64) (httptransport.OwnerOfResponse, error) {
	owner, err := h.OwnerOf.Execute(ctx, tokenID)
	if err != nil {
		return httptransport.OwnerOfResponse{}, err
	}
	return httptransport.OwnerOfResponse{TokenID: tokenID, Owner: owner}, nil
}

func (h Handler) BalanceOfHandler(ctx context.Context, address string) (httptransport.BalanceOfResponse, error) {
	balance, err := h.BalanceOf.Execute(ctx, address)
	if err != nil {
		return httptransport.BalanceOfResponse{}, err
	}
	return httptransport.BalanceOfResponse{Address: address, Balance: balance}, nil
}

func (h Handler) ContentRefOfHandler(ctx context.Context, tokenID uint64) (httptransport.ContentRefOfResponse, error) {
	contentRef, err := h.ContentRefOf.Execute(ctx, tokenID)
	if err != nil {
		return httptransport.ContentRefOfResponse{}, err
	}
	return httptransport.ContentRefOfResponse{TokenID: tokenID, ContentRef: contentRef}, nil
}

func (h Handler) ListTokensHandler(ctx context.Context, owner string) (httptransport.ListTokensResponse, error) {
	tokens, err := h.ListTokens.Execute(ctx, owner)
	if err != nil {
		return httptransport.ListTokensResponse{}, err
	}
	items := make([]httptransport.TokenDTO, 0, len(tokens))
	for _, token := range tokens {
		items = append(items, tokenDTO(token))
	}
	return httptransport.ListTokensResponse{Owner: owner, Tokens: items}, nil
}

func tokenDTO(token entities.AdToken) httptransport.TokenDTO {
	return httptransport.TokenDTO{
		TokenID:    token.TokenID,
		Owner:      token.Owner,
		CampaignID: token.CampaignID,
		IssuedAt:   token.IssuedAt,
	}
}
