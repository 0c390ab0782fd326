/*
Package l10nsync synchronizes the translations in a Google Sheets spreadsheet with the
per-language ARB resource files of a Flutter project.

The spreadsheet is a flat table: an 'id' column followed by one column per language code,
one row per translation id. The resource files are the flat JSON mappings the Flutter
localization tooling consumes, one app_<code>.arb file per language, located via the
project's l10n.yaml.

flutter-gsheet-localization-sync supports the following commands:

  - pull (the default), to merge the spreadsheet translations into the local ARB files
  - init, to overwrite a spreadsheet with the contents of the local ARB files
  - push, to add translation ids missing from the spreadsheet without touching existing rows
  - authorise, to authorise application access to the Google Sheets spreadsheet
  - version, to display the current version
*/
package l10nsync
