package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"laminasycortes/internal/domain/entities"
	"laminasycortes/internal/domain/numbering"
	"laminasycortes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName   = "quotes"
	defaultCountersTableName = "quote_counters"
	quotesOwnerIDIndex       = "owner_id-index"
)

// quoteItem is the flat external representation crossing the persistence
// boundary. The nested client/product grouping exists only in the entity; the
// mapping both ways is loss-free.
type quoteItem struct {
	ID                 string `dynamodbav:"id"`
	Number             string `dynamodbav:"number"`
	ClientName         string `dynamodbav:"client_name"`
	ClientEmail        string `dynamodbav:"client_email"`
	ClientPhone        string `dynamodbav:"client_phone"`
	ProductDescription string `dynamodbav:"product_description"`
	ProductQuantity    string `dynamodbav:"product_quantity"`
	ProductUnitPrice   string `dynamodbav:"product_unit_price"`
	ProductSubtotal    string `dynamodbav:"product_subtotal"`
	ProductIVA         string `dynamodbav:"product_iva"`
	ProductTotal       string `dynamodbav:"product_total"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	CreatedBy          string `dynamodbav:"created_by"`
	OwnerID            string `dynamodbav:"owner_id"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - quotes:         PK id (string), GSI owner_id-index on owner_id
//   - quote_counters: PK owner_id (string), numeric attribute seq
//
// The counters table makes this repository an IQuoteSequencer: numbers come
// from an atomic ADD, so two concurrent creates in the same owner scope can
// never be handed the same number.
type QuoteDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)
var _ interfaces.IQuoteSequencer = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		countersTable: getenvDefault("QUOTE_COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	// A quote of another owner is indistinguishable from a missing one.
	if it.OwnerID != ownerID {
		return entities.Quote{}, nil
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: q.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		UpdateExpression: aws.String("SET client_name = :client_name, client_email = :client_email, " +
			"client_phone = :client_phone, product_description = :product_description, " +
			"product_quantity = :product_quantity, product_unit_price = :product_unit_price, " +
			"product_subtotal = :product_subtotal, product_iva = :product_iva, " +
			"product_total = :product_total, updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":               &types.AttributeValueMemberS{Value: q.OwnerID},
			":client_name":         &types.AttributeValueMemberS{Value: q.Client.Name},
			":client_email":        &types.AttributeValueMemberS{Value: q.Client.Email},
			":client_phone":        &types.AttributeValueMemberS{Value: q.Client.Phone},
			":product_description": &types.AttributeValueMemberS{Value: q.Product.Description},
			":product_quantity":    &types.AttributeValueMemberS{Value: floatToString(q.Product.Quantity)},
			":product_unit_price":  &types.AttributeValueMemberS{Value: floatToString(q.Product.UnitPrice)},
			":product_subtotal":    &types.AttributeValueMemberS{Value: floatToString(q.Product.Subtotal)},
			":product_iva":         &types.AttributeValueMemberS{Value: floatToString(q.Product.IVA)},
			":product_total":       &types.AttributeValueMemberS{Value: floatToString(q.Product.Total)},
			":updated_at":          &types.AttributeValueMemberS{Value: q.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) DeleteByID(ctx context.Context, ownerID, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *QuoteDynamoRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	quotes, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, q := range quotes {
		if _, err := r.DeleteByID(ctx, ownerID, q.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteDynamoRepository) ListNumbers(ctx context.Context, ownerID string) ([]string, error) {
	quotes, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(quotes))
	for _, q := range quotes {
		numbers = append(numbers, q.Number)
	}
	return numbers, nil
}

// NextNumber issues the next display number for the owner through an atomic
// counter, the transactional sequence the numbering policy requires from a
// multi-writer backend.
func (r *QuoteDynamoRepository) NextNumber(ctx context.Context, ownerID string) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return "", err
	}

	raw, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return "", errors.New("quote counter returned no sequence value")
	}
	seq, err := strconv.Atoi(raw.Value)
	if err != nil {
		return "", err
	}
	return numbering.Format(seq), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                 q.ID,
		Number:             q.Number,
		ClientName:         q.Client.Name,
		ClientEmail:        q.Client.Email,
		ClientPhone:        q.Client.Phone,
		ProductDescription: q.Product.Description,
		ProductQuantity:    floatToString(q.Product.Quantity),
		ProductUnitPrice:   floatToString(q.Product.UnitPrice),
		ProductSubtotal:    floatToString(q.Product.Subtotal),
		ProductIVA:         floatToString(q.Product.IVA),
		ProductTotal:       floatToString(q.Product.Total),
		CreatedAt:          q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:          q.CreatedBy,
		OwnerID:            q.OwnerID,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	quantity, _ := strconv.ParseFloat(it.ProductQuantity, 64)
	unitPrice, _ := strconv.ParseFloat(it.ProductUnitPrice, 64)
	subtotal, _ := strconv.ParseFloat(it.ProductSubtotal, 64)
	iva, _ := strconv.ParseFloat(it.ProductIVA, 64)
	total, _ := strconv.ParseFloat(it.ProductTotal, 64)
	return entities.Quote{
		ID:     it.ID,
		Number: it.Number,
		Client: entities.QuoteClient{
			Name:  it.ClientName,
			Email: it.ClientEmail,
			Phone: it.ClientPhone,
		},
		Product: entities.QuoteProduct{
			Description: it.ProductDescription,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Subtotal:    subtotal,
			IVA:         iva,
			Total:       total,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		CreatedBy: it.CreatedBy,
		OwnerID:   it.OwnerID,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
