// Package osgi translates build-coordinate ("Maven") version strings into
// versions that comply with the OSGi Core framework version grammar and
// renders dependency constraints as OSGi capability filter clauses.
//
// # Version Grammar
//
// Input versions have up to four dot-separated segments; the last segment may
// carry a free-form qualifier introduced by a dash:
//
//	1
//	1.2
//	1.2.3
//	1.2.3-SNAPSHOT
//	1.2.3.beta-1
//
// Output versions always have four segments, major.minor.micro.qualifier,
// where major, minor and micro contain only decimal digits and the qualifier
// contains only [A-Za-z0-9_-]:
//
//	v, err := osgi.CalculateVersion("1.2-SNAPSHOT") // "1.2.0.SNAPSHOT"
//
// Only the final segment of the input may be non-numeric. A non-numeric major,
// minor or micro segment that is not the last segment fails with
// *MalformedSegmentError instead of silently discarding information.
//
// # Policies
//
// Two behaviors are configurable on a Translator:
//
//   - Qualifier default: QualifierZero (default) fills a missing qualifier with
//     "0"; QualifierTimestamp uses the UTC build time formatted as yyyyMMdd-HHmm.
//   - Leading dash strip (default on): in "1.2.3-beta" the dash that
//     introduces the qualifier is dropped, producing "1.2.3.beta". A qualifier
//     given as the fourth dotted segment ("1.2.3.-beta") is kept as is, so
//     translating a valid OSGi version never changes it.
//
//	t := osgi.NewTranslator(
//	    osgi.WithQualifierPolicy(osgi.QualifierTimestamp),
//	    osgi.WithLeadingDashStrip(false),
//	)
//
// # Capabilities
//
// CalculateDependenciesString renders a dependency list as
//
//	groupId;filter:="(artifactId=osgiVersion)",...
//
// and aborts on the first dependency whose version cannot be translated.
//
// # Errors
//
// Translation failures are one of *MalformedVersionError,
// *MalformedSegmentError or *MalformedQualifierError. Use errors.As to
// inspect the offending value. All three report an errors.ErrorCode through
// their Code method.
//
// All functions in this package are pure; a Translator is immutable after
// construction and safe for concurrent use.
package osgi
