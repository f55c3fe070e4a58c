// Package countries owns the country records and the ingestion pipeline.
//
// # Ingestion
//
// Service.RunIngestion fetches the complete dataset from the source, then
// reconciles it in consecutive batches of ten through core/reconcile:
//
//   - a known name is updated (capital, region, population and a fresh GDP
//     estimate from the stored exchange rate);
//   - an unknown name is created after resolving its first currency;
//   - anything else becomes a failed outcome and the run continues.
//
// Only a fetch failure aborts a run, and it does so before any write. Once all
// batches settled the refresh time is stamped and the summary report is
// published a single time. A run lock rejects overlapping runs with
// apperror.ErrRunInProgress.
//
// # Routes
//
//	POST   /countries/refresh
//	GET    /countries?region=&currency=&sort=gdp_asc|gdp_desc
//	GET    /countries/:name
//	DELETE /countries/:name
//	GET    /status
//
// Names are matched after trimming and lower-casing.
package countries
