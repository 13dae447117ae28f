// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the part of the DynamoDB client used by the repositories.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// dynamoCardRepository keeps cards in a table whose partition key is
// card_id.
type dynamoCardRepository struct {
	client DynamoDBAPI
	table  string
	logger *logger.Logger
}

func NewDynamoCardRepository(client DynamoDBAPI, table string, logger *logger.Logger) CardRepository {
	logger.Debug().Str("table", table).Msg("creating dynamodb card repository")
	return &dynamoCardRepository{client: client, table: table, logger: logger}
}

func cardKey(cardID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.FieldCardID: &types.AttributeValueMemberS{Value: cardID},
	}
}

// CreateCard writes the item only if no item with the same card_id exists.
func (r *dynamoCardRepository) CreateCard(ctx context.Context, card models.Card) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(card)
	if err != nil {
		return fmt.Errorf("%w: error marshaling card: %w", ErrStoreUnavailable, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": models.FieldCardID,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return ErrCardAlreadyExists
		}
		log.Err(err).Str("func", "*dynamoCardRepository.CreateCard").Str("card_id", card.CardID).Msg("put item failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// UpdateCard sets the supplied attributes. The attribute_exists condition
// keeps UpdateItem from creating a new item.
func (r *dynamoCardRepository) UpdateCard(ctx context.Context, update models.CardUpdate) error {
	return r.updateItem(ctx, update, true)
}

// UpsertCard sets the supplied attributes without a condition, so
// UpdateItem creates the item when it is missing.
func (r *dynamoCardRepository) UpsertCard(ctx context.Context, update models.CardUpdate) error {
	return r.updateItem(ctx, update, false)
}

func (r *dynamoCardRepository) updateItem(ctx context.Context, update models.CardUpdate, mustExist bool) error {
	log := logger.FromContext(ctx)

	expr, names, values := buildSetExpression(update.Fields())
	if expr == "" {
		return fmt.Errorf("%w: %w: nothing to update", ErrStoreUnavailable, ErrBuildingSQLQuery)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       cardKey(update.CardID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if mustExist {
		names["#pk"] = models.FieldCardID
		input.ConditionExpression = aws.String("attribute_exists(#pk)")
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		if mustExist && isConditionalCheckFailed(err) {
			return ErrCardNotFound
		}
		log.Err(err).Str("func", "*dynamoCardRepository.updateItem").Str("card_id", update.CardID).Msg("update item failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (r *dynamoCardRepository) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            cardKey(cardID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoCardRepository.GetCard").Str("card_id", cardID).Msg("get item failed")
		return models.Card{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return models.Card{}, ErrCardNotFound
	}

	var card models.Card
	if err = attributevalue.UnmarshalMap(out.Item, &card); err != nil {
		return models.Card{}, fmt.Errorf("%w: error unmarshaling card: %w", ErrStoreUnavailable, err)
	}

	return card, nil
}

func (r *dynamoCardRepository) DeleteCard(ctx context.Context, cardID string) error {
	log := logger.FromContext(ctx)

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       cardKey(cardID),
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoCardRepository.DeleteCard").Str("card_id", cardID).Msg("delete item failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// buildSetExpression turns the supplied fields into "SET #f0 = :v0, ...".
// Every attribute goes through a name placeholder since several card
// attributes ("name" among them) are DynamoDB reserved words.
func buildSetExpression(fields []models.FieldValue) (string, map[string]string, map[string]types.AttributeValue) {
	names := make(map[string]string, len(fields)+1)
	values := make(map[string]types.AttributeValue, len(fields))
	clauses := make([]string, 0, len(fields))

	for i, f := range fields {
		n := "#f" + strconv.Itoa(i)
		v := ":v" + strconv.Itoa(i)
		names[n] = f.Name
		values[v] = &types.AttributeValueMemberS{Value: f.Value}
		clauses = append(clauses, n+" = "+v)
	}

	if len(clauses) == 0 {
		return "", names, values
	}
	return "SET " + strings.Join(clauses, ", "), names, values
}

// dynamoUserRepository keeps accounts in a table whose partition key is
// email. Uniqueness of card_id and phone is enforced with guard items in
// the same table, written in one transaction with the account.
type dynamoUserRepository struct {
	client DynamoDBAPI
	table  string
	logger *logger.Logger
}

func NewDynamoUserRepository(client DynamoDBAPI, table string, logger *logger.Logger) UserRepository {
	logger.Debug().Str("table", table).Msg("creating dynamodb user repository")
	return &dynamoUserRepository{client: client, table: table, logger: logger}
}

// guardKey names the guard item reserving value for kind. The space cannot
// occur in a valid email, so guard keys never collide with accounts.
func guardKey(kind, value string) string {
	return kind + " " + value
}

func (r *dynamoUserRepository) guardPut(kind, value, owner string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(r.table),
			Item: map[string]types.AttributeValue{
				models.FieldEmail: &types.AttributeValueMemberS{Value: guardKey(kind, value)},
				"owner":           &types.AttributeValueMemberS{Value: owner},
			},
			ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
			ExpressionAttributeNames: map[string]string{"#pk": models.FieldEmail},
		},
	}
}

func (r *dynamoUserRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("%w: error marshaling user: %w", ErrStoreUnavailable, err)
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.table),
				Item:                     item,
				ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{"#pk": models.FieldEmail},
			},
		},
		r.guardPut(models.FieldCardID, user.CardID, user.Email),
	}
	if user.Phone != "" {
		items = append(items, r.guardPut(models.FieldPhone, user.Phone, user.Email))
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*dynamoUserRepository.CreateUser").Msg("transaction failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (r *dynamoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			models.FieldEmail: &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoUserRepository.FindUserByEmail").Msg("get item failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	if err = attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: error unmarshaling user: %w", ErrStoreUnavailable, err)
	}

	return user, nil
}

// isConditionalCheckFailed reports whether err is a failed condition,
// either on a single write or on any item of a cancelled transaction.
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}

	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}

	return false
}
