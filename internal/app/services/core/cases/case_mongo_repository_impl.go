package cases

import (
	"context"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCaseMongoRepository(db *mongo.Client, dbName string) contracts.CaseRepository {
	return &CaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCases),
	}
}

func (r *CaseMongoRepository) CreateCase(ctx context.Context, caseModel *models.ClinicalCase) (caseID string, err error) {
	result, err := r.Collection.InsertOne(ctx, caseModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CaseMongoRepository) FindByID(ctx context.Context, caseID string) (*models.ClinicalCase, error) {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var caseModel models.ClinicalCase
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&caseModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &caseModel, nil
}

func (r *CaseMongoRepository) FindAll(ctx context.Context, examination, difficulty string) ([]models.ClinicalCase, error) {
	filter := bson.M{}
	if examination != "" {
		filter["examination"] = examination
	}
	if difficulty != "" {
		filter["difficulty"] = difficulty
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	caseModels := []models.ClinicalCase{}
	if err := cursor.All(ctx, &caseModels); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return caseModels, nil
}

func (r *CaseMongoRepository) UpdateCase(ctx context.Context, caseModel *models.ClinicalCase) error {
	objectID, err := primitive.ObjectIDFromHex(caseModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"title":       caseModel.Title,
		"description": caseModel.Description,
		"examination": caseModel.Examination,
		"difficulty":  caseModel.Difficulty,
		"diagnosis":   caseModel.Diagnosis,
		"tags":        caseModel.Tags,
		"attachments": caseModel.Attachments,
		"updatedAt":   caseModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CaseMongoRepository) DeleteByID(ctx context.Context, caseID string) error {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
