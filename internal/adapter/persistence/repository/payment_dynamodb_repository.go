package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
	paymentsExternalIDIndex  = "external_id-index"
)

type paymentItem struct {
	ID       string `dynamodbav:"id"`
	OrderID  string `dynamodbav:"order_id"`
	Provider string `dynamodbav:"provider"`
	// ProviderExternalID is "<provider>#<external_id>", the external_id-index
	// key; webhooks resolve payments through it.
	ProviderExternalID string `dynamodbav:"provider_external_id,omitempty"`
	ExternalID         string `dynamodbav:"external_id,omitempty"`
	Amount             string `dynamodbav:"amount"`
	Currency           string `dynamodbav:"currency"`
	Status             string `dynamodbav:"status"`
	RawProviderStatus  string `dynamodbav:"raw_provider_status,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	LastUpdatedAt      string `dynamodbav:"last_updated_at"`
	ApprovedAt         string `dynamodbav:"approved_at,omitempty"`
	RefundID           string `dynamodbav:"refund_id,omitempty"`
	RefundedAmount     string `dynamodbav:"refunded_amount,omitempty"`
	RefundRawStatus    string `dynamodbav:"refund_raw_status,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//   - GSI: external_id-index (PK: provider_external_id)
//
// UpdateStatus writes conditionally on the current status attribute. That
// single conditional write is what serializes a client poll racing an inbound
// webhook on the same record; no other locking exists.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByExternalID(ctx context.Context, provider entities.PaymentProvider, externalID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalIDIndex),
		KeyConditionExpression: aws.String("provider_external_id = :pex"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pex": &types.AttributeValueMemberS{Value: providerExternalID(provider, externalID)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetActiveByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	payments, err := r.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	for _, p := range payments {
		if !p.Status.IsTerminal() {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, expected entities.PaymentStatus, upd interfaces.PaymentUpdate) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #raw = :raw, #updated = :updated"
	values := map[string]types.AttributeValue{
		":status":   &types.AttributeValueMemberS{Value: string(upd.Status)},
		":raw":      &types.AttributeValueMemberS{Value: upd.RawStatus},
		":updated":  &types.AttributeValueMemberS{Value: now},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
	}
	names := map[string]string{
		"#id":      "id",
		"#status":  "status",
		"#raw":     "raw_provider_status",
		"#updated": "last_updated_at",
	}
	if upd.ApprovedAt != nil {
		expr += ", #approved = :approved"
		values[":approved"] = &types.AttributeValueMemberS{Value: upd.ApprovedAt.UTC().Format(time.RFC3339Nano)}
		names["#approved"] = "approved_at"
	}
	if upd.Refund != nil {
		expr += ", #refund_id = :refund_id, #refunded_amount = :refunded_amount, #refund_raw = :refund_raw"
		values[":refund_id"] = &types.AttributeValueMemberS{Value: upd.Refund.RefundID}
		values[":refunded_amount"] = &types.AttributeValueMemberS{Value: floatToString(upd.Refund.RefundedAmount)}
		values[":refund_raw"] = &types.AttributeValueMemberS{Value: upd.Refund.RawStatus}
		names["#refund_id"] = "refund_id"
		names["#refunded_amount"] = "refunded_amount"
		names["#refund_raw"] = "refund_raw_status"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrStatusConflict
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, interfaces.ErrStatusConflict
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func providerExternalID(provider entities.PaymentProvider, externalID string) string {
	return string(provider) + "#" + externalID
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Provider:          string(p.Provider),
		ExternalID:        p.ExternalID,
		Amount:            floatToString(p.Amount),
		Currency:          p.Currency,
		Status:            string(p.Status),
		RawProviderStatus: p.RawProviderStatus,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		LastUpdatedAt:     p.LastUpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.ExternalID != "" {
		it.ProviderExternalID = providerExternalID(p.Provider, p.ExternalID)
	}
	if p.ApprovedAt != nil {
		it.ApprovedAt = p.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	if p.Refund != nil {
		it.RefundID = p.Refund.RefundID
		it.RefundedAmount = floatToString(p.Refund.RefundedAmount)
		it.RefundRawStatus = p.Refund.RawStatus
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	lastUpdatedAt, _ := time.Parse(time.RFC3339Nano, it.LastUpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	p := entities.Payment{
		ID:                it.ID,
		OrderID:           it.OrderID,
		Provider:          entities.PaymentProvider(it.Provider),
		ExternalID:        it.ExternalID,
		Amount:            amount,
		Currency:          it.Currency,
		Status:            entities.PaymentStatus(it.Status),
		RawProviderStatus: it.RawProviderStatus,
		CreatedAt:         createdAt,
		LastUpdatedAt:     lastUpdatedAt,
	}
	if it.ApprovedAt != "" {
		if approvedAt, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			p.ApprovedAt = &approvedAt
		}
	}
	if it.RefundID != "" {
		refundedAmount, _ := strconv.ParseFloat(it.RefundedAmount, 64)
		p.Refund = &entities.Refund{
			RefundID:       it.RefundID,
			RefundedAmount: refundedAmount,
			RawStatus:      it.RefundRawStatus,
		}
	}
	return p
}
