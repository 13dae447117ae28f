package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamoDB struct {
	putItem            func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem            func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem         func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem         func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	transactWriteItems func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamoDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteItem(in)
}

func (f *fakeDynamoDB) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return f.transactWriteItems(in)
}

func stringAttr(t *testing.T, item map[string]types.AttributeValue, name string) string {
	t.Helper()
	v, ok := item[name].(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %q is not a string", name)
	return v.Value
}

func TestDynamoCardRepository_CreateCard(t *testing.T) {
	var got *dynamodb.PutItemInput
	client := &fakeDynamoDB{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		got = in
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := NewDynamoCardRepository(client, "cards", logger.Nop())

	card := testCard()
	card.CurrentRole = "CTO"
	require.NoError(t, repo.CreateCard(context.Background(), card))

	require.NotNil(t, got)
	assert.Equal(t, "cards", aws.ToString(got.TableName))
	assert.Equal(t, "attribute_not_exists(#pk)", aws.ToString(got.ConditionExpression))
	assert.Equal(t, models.FieldCardID, got.ExpressionAttributeNames["#pk"])
	assert.Equal(t, "ana", stringAttr(t, got.Item, models.FieldCardID))
	assert.Equal(t, "CTO", stringAttr(t, got.Item, models.FieldCurrentRole))
}

func TestDynamoCardRepository_CreateCard_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "condition failed", err: &types.ConditionalCheckFailedException{}, wantErr: ErrCardAlreadyExists},
		{name: "throttled", err: &types.ProvisionedThroughputExceededException{}, wantErr: ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeDynamoDB{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				return nil, tt.err
			}}
			repo := NewDynamoCardRepository(client, "cards", logger.Nop())
			assert.ErrorIs(t, repo.CreateCard(context.Background(), testCard()), tt.wantErr)
		})
	}
}

func TestDynamoCardRepository_UpdateCard(t *testing.T) {
	var got *dynamodb.UpdateItemInput
	client := &fakeDynamoDB{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		got = in
		return &dynamodb.UpdateItemOutput{}, nil
	}}
	repo := NewDynamoCardRepository(client, "cards", logger.Nop())

	err := repo.UpdateCard(context.Background(), models.CardUpdate{CardID: "ana", Name: strPtr("Ana B."), Bio: strPtr("hi")})
	require.NoError(t, err)

	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1", aws.ToString(got.UpdateExpression))
	assert.Equal(t, "attribute_exists(#pk)", aws.ToString(got.ConditionExpression))
	assert.Equal(t, models.FieldName, got.ExpressionAttributeNames["#f0"])
	assert.Equal(t, models.FieldBio, got.ExpressionAttributeNames["#f1"])
	assert.Equal(t, "Ana B.", stringAttr(t, got.ExpressionAttributeValues, ":v0"))
	assert.Equal(t, "ana", stringAttr(t, got.Key, models.FieldCardID))
}

func TestDynamoCardRepository_UpdateCard_Missing(t *testing.T) {
	client := &fakeDynamoDB{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return nil, &types.ConditionalCheckFailedException{}
	}}
	repo := NewDynamoCardRepository(client, "cards", logger.Nop())

	err := repo.UpdateCard(context.Background(), models.CardUpdate{CardID: "ghost", Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestDynamoCardRepository_UpsertCard(t *testing.T) {
	var got *dynamodb.UpdateItemInput
	client := &fakeDynamoDB{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		got = in
		return &dynamodb.UpdateItemOutput{}, nil
	}}
	repo := NewDynamoCardRepository(client, "cards", logger.Nop())

	require.NoError(t, repo.UpsertCard(context.Background(), models.CardUpdate{CardID: "ghost", Name: strPtr("Ghost")}))

	assert.Equal(t, "SET #f0 = :v0", aws.ToString(got.UpdateExpression))
	assert.Nil(t, got.ConditionExpression, "an unconditional UpdateItem creates the missing item")
	assert.NotContains(t, got.ExpressionAttributeNames, "#pk")
	assert.Equal(t, "ghost", stringAttr(t, got.Key, models.FieldCardID))
}

func TestDynamoCardRepository_UpsertCard_Error(t *testing.T) {
	client := &fakeDynamoDB{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return nil, errors.New("throttled")
	}}
	repo := NewDynamoCardRepository(client, "cards", logger.Nop())

	err := repo.UpsertCard(context.Background(), models.CardUpdate{CardID: "ana", Bio: strPtr("x")})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestDynamoCardRepository_GetCard(t *testing.T) {
	stored, err := attributevalue.MarshalMap(testCard())
	require.NoError(t, err)

	client := &fakeDynamoDB{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		assert.True(t, aws.ToBool(in.ConsistentRead))
		if stringAttr(t, in.Key, models.FieldCardID) == "ana" {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		}
		return &dynamodb.GetItemOutput{}, nil
	}}
	repo := NewDynamoCardRepository(client, "cards", logger.Nop())

	card, err := repo.GetCard(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, testCard(), card)

	_, err = repo.GetCard(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestDynamoCardRepository_DeleteCard(t *testing.T) {
	calls := 0
	client := &fakeDynamoDB{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("network")
		}
		return &dynamodb.DeleteItemOutput{}, nil
	}}
	repo := NewDynamoCardRepository(client, "cards", logger.Nop())

	assert.NoError(t, repo.DeleteCard(context.Background(), "ana"))
	assert.ErrorIs(t, repo.DeleteCard(context.Background(), "ana"), ErrStoreUnavailable)
}

func TestDynamoUserRepository_CreateUser(t *testing.T) {
	tests := []struct {
		name      string
		user      models.User
		wantItems int
	}{
		{
			name:      "with phone",
			user:      models.User{Email: "ana@example.com", Name: "Ana", Password: "d", CardID: "ana", Phone: "+5511999999999"},
			wantItems: 3,
		},
		{
			name:      "without phone",
			user:      models.User{Email: "ana@example.com", Name: "Ana", Password: "d", CardID: "ana"},
			wantItems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *dynamodb.TransactWriteItemsInput
			client := &fakeDynamoDB{transactWriteItems: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				got = in
				return &dynamodb.TransactWriteItemsOutput{}, nil
			}}
			repo := NewDynamoUserRepository(client, "users", logger.Nop())

			require.NoError(t, repo.CreateUser(context.Background(), tt.user))
			require.Len(t, got.TransactItems, tt.wantItems)

			account := got.TransactItems[0].Put
			assert.Equal(t, tt.user.Email, stringAttr(t, account.Item, models.FieldEmail))

			guard := got.TransactItems[1].Put
			assert.Equal(t, "card_id ana", stringAttr(t, guard.Item, models.FieldEmail))
			assert.Equal(t, tt.user.Email, stringAttr(t, guard.Item, "owner"))

			for _, item := range got.TransactItems {
				assert.Equal(t, "attribute_not_exists(#pk)", aws.ToString(item.Put.ConditionExpression))
			}
		})
	}
}

func TestDynamoUserRepository_CreateUser_Conflict(t *testing.T) {
	client := &fakeDynamoDB{transactWriteItems: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
	}}
	repo := NewDynamoUserRepository(client, "users", logger.Nop())

	err := repo.CreateUser(context.Background(), models.User{Email: "bob@example.com", CardID: "ana"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestDynamoUserRepository_FindUserByEmail(t *testing.T) {
	stored, err := attributevalue.MarshalMap(models.User{Email: "ana@example.com", Password: "digest", CardID: "ana"})
	require.NoError(t, err)

	client := &fakeDynamoDB{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		switch stringAttr(t, in.Key, models.FieldEmail) {
		case "ana@example.com":
			return &dynamodb.GetItemOutput{Item: stored}, nil
		case "down@example.com":
			return nil, errors.New("unreachable")
		}
		return &dynamodb.GetItemOutput{}, nil
	}}
	repo := NewDynamoUserRepository(client, "users", logger.Nop())

	user, err := repo.FindUserByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "digest", user.Password)
	assert.Empty(t, user.Phone)

	_, err = repo.FindUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindUserByEmail(context.Background(), "down@example.com")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func Test_isConditionalCheckFailed(t *testing.T) {
	assert.True(t, isConditionalCheckFailed(&types.ConditionalCheckFailedException{}))
	assert.False(t, isConditionalCheckFailed(&types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
	}))
	assert.False(t, isConditionalCheckFailed(errors.New("x")))
}
