package mongo

import (
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// offerDocument is the stored shape of an offer. Active mirrors the state so
// the partial unique index can filter on a plain equality.
type offerDocument struct {
	ID            string                 `bson:"_id"`
	ProductID     string                 `bson:"product_id"`
	BuyerID       string                 `bson:"buyer_id"`
	SellerID      string                 `bson:"seller_id"`
	InitialAmount primitive.Decimal128   `bson:"initial_amount"`
	CurrentAmount primitive.Decimal128   `bson:"current_amount"`
	ListingPrice  primitive.Decimal128   `bson:"listing_price"`
	State         string                 `bson:"state"`
	Active        bool                   `bson:"active"`
	Messages      []offerMessageDocument `bson:"messages"`
	ExpiresAt     time.Time              `bson:"expires_at"`
	CreatedAt     time.Time              `bson:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at"`
	Version       int64                  `bson:"version"`
}

type offerMessageDocument struct {
	AuthorID       string                `bson:"author_id"`
	Text           string                `bson:"text"`
	ProposedAmount *primitive.Decimal128 `bson:"proposed_amount,omitempty"`
	IsCounterOffer bool                  `bson:"is_counter_offer"`
	CreatedAt      time.Time             `bson:"created_at"`
}

type userDocument struct {
	ID          string    `bson:"_id"`
	DisplayName string    `bson:"display_name"`
	Email       string    `bson:"email"`
	Role        string    `bson:"role"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type productDocument struct {
	ID         string               `bson:"_id"`
	Title      string               `bson:"title"`
	Price      primitive.Decimal128 `bson:"price"`
	OwnerID    string               `bson:"owner_id"`
	IsActive   bool                 `bson:"is_active"`
	IsApproved bool                 `bson:"is_approved"`
	CreatedAt  time.Time            `bson:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at"`
}

// --- Mapper Functions ---

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	value, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, errors.Wrapf(err, "amount %s is not representable", d.String())
	}

	return value, nil
}

func fromDecimal128(value primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "stored amount %s is invalid", value.String())
	}

	return d, nil
}

func fromMessagesDomain(messages []entity.OfferMessage) ([]offerMessageDocument, error) {
	docs := make([]offerMessageDocument, 0, len(messages))
	for _, msg := range messages {
		doc := offerMessageDocument{
			AuthorID:       msg.AuthorID.String(),
			Text:           msg.Text,
			IsCounterOffer: msg.IsCounterOffer,
			CreatedAt:      msg.CreatedAt,
		}
		if msg.ProposedAmount != nil {
			amount, err := toDecimal128(*msg.ProposedAmount)
			if err != nil {
				return nil, err
			}
			doc.ProposedAmount = &amount
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func fromOfferDomain(offer *entity.Offer) (*offerDocument, error) {
	initial, err := toDecimal128(offer.InitialAmount)
	if err != nil {
		return nil, err
	}
	current, err := toDecimal128(offer.CurrentAmount)
	if err != nil {
		return nil, err
	}
	listing, err := toDecimal128(offer.ListingPrice)
	if err != nil {
		return nil, err
	}
	messages, err := fromMessagesDomain(offer.Messages)
	if err != nil {
		return nil, err
	}

	return &offerDocument{
		ID:            offer.ID.String(),
		ProductID:     offer.ProductID.String(),
		BuyerID:       offer.BuyerID.String(),
		SellerID:      offer.SellerID.String(),
		InitialAmount: initial,
		CurrentAmount: current,
		ListingPrice:  listing,
		State:         offer.State.String(),
		Active:        offer.State.IsActive(),
		Messages:      messages,
		ExpiresAt:     offer.ExpiresAt.UTC(),
		CreatedAt:     offer.CreatedAt.UTC(),
		UpdatedAt:     offer.UpdatedAt.UTC(),
		Version:       offer.Version,
	}, nil
}

func toOfferDomain(doc *offerDocument) (*entity.Offer, error) {
	ids, err := parseUUIDs(doc.ID, doc.ProductID, doc.BuyerID, doc.SellerID)
	if err != nil {
		return nil, err
	}
	initial, err := fromDecimal128(doc.InitialAmount)
	if err != nil {
		return nil, err
	}
	current, err := fromDecimal128(doc.CurrentAmount)
	if err != nil {
		return nil, err
	}
	listing, err := fromDecimal128(doc.ListingPrice)
	if err != nil {
		return nil, err
	}

	messages := make([]entity.OfferMessage, 0, len(doc.Messages))
	for _, msgDoc := range doc.Messages {
		authorID, err := uuid.Parse(msgDoc.AuthorID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid message author")
		}
		msg := entity.OfferMessage{
			AuthorID:       authorID,
			Text:           msgDoc.Text,
			IsCounterOffer: msgDoc.IsCounterOffer,
			CreatedAt:      msgDoc.CreatedAt,
		}
		if msgDoc.ProposedAmount != nil {
			amount, err := fromDecimal128(*msgDoc.ProposedAmount)
			if err != nil {
				return nil, err
			}
			msg.ProposedAmount = &amount
		}
		messages = append(messages, msg)
	}

	return &entity.Offer{
		ID:            ids[0],
		ProductID:     ids[1],
		BuyerID:       ids[2],
		SellerID:      ids[3],
		InitialAmount: initial,
		CurrentAmount: current,
		ListingPrice:  listing,
		State:         entity.OfferState(doc.State),
		Messages:      messages,
		ExpiresAt:     doc.ExpiresAt,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
		Version:       doc.Version,
	}, nil
}

func toUserDomain(doc *userDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id")
	}

	return &entity.User{
		ID:          id,
		DisplayName: doc.DisplayName,
		Email:       doc.Email,
		Role:        entity.Role(doc.Role),
		IsActive:    doc.IsActive,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func toProductDomain(doc *productDocument) (*entity.Product, error) {
	ids, err := parseUUIDs(doc.ID, doc.OwnerID)
	if err != nil {
		return nil, err
	}
	price, err := fromDecimal128(doc.Price)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ID:         ids[0],
		Title:      doc.Title,
		Price:      price,
		OwnerID:    ids[1],
		IsActive:   doc.IsActive,
		IsApproved: doc.IsApproved,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}

func parseUUIDs(values ...string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid id %q", value)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
